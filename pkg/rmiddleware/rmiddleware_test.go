package rmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveAs(p *common.Principal, guard gin.HandlerFunc) int {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		if p != nil {
			common.SetPrincipal(c, p)
		}
		c.Next()
	}, guard, func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w.Code
}

func TestRoleMiddleware(t *testing.T) {
	player := &common.Principal{UserID: "u1", Role: models.RolePlayer}
	school := &common.Principal{UserID: "u2", Role: models.RoleSchool}

	assert.Equal(t, http.StatusNoContent, serveAs(player, PlayerMiddleware()))
	assert.Equal(t, http.StatusForbidden, serveAs(school, PlayerMiddleware()))
	assert.Equal(t, http.StatusNoContent, serveAs(school, SchoolMiddleware()))
	assert.Equal(t, http.StatusNoContent, serveAs(school, RoleMiddleware(models.RolePlayer, models.RoleSchool)))
	assert.Equal(t, http.StatusUnauthorized, serveAs(nil, SchoolMiddleware()))
}
