package reference

import (
	"log"
	"net/http"

	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/pkg/responses"
	"github.com/gin-gonic/gin"
)

type ReferenceController struct {
	repo ReferenceRepository
}

func NewReferenceController(repo ReferenceRepository) *ReferenceController {
	return &ReferenceController{repo: repo}
}

// ListPositions godoc
// @Summary      List positions
// @Tags         Reference
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=[]models.Position}
// @Router       /positions [get]
func (rc *ReferenceController) ListPositions(c *gin.Context) {
	positions, err := rc.repo.ListPositions(c.Request.Context())
	if err != nil {
		log.Printf("list positions: %v", err)
		positions = []models.Position{}
	}
	responses.SendSuccess(c, http.StatusOK, "Positions retrieved", positions)
}

// ListCategories godoc
// @Summary      List age categories
// @Tags         Reference
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=[]models.Category}
// @Router       /categories [get]
func (rc *ReferenceController) ListCategories(c *gin.Context) {
	categories, err := rc.repo.ListCategories(c.Request.Context())
	if err != nil {
		log.Printf("list categories: %v", err)
		categories = []models.Category{}
	}
	responses.SendSuccess(c, http.StatusOK, "Categories retrieved", categories)
}
