package reference

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterReferenceRoutes(router *gin.RouterGroup, db *gorm.DB) {
	referenceController := NewReferenceController(NewReferenceRepository(db))

	router.GET("/positions", referenceController.ListPositions)
	router.GET("/categories", referenceController.ListCategories)
}
