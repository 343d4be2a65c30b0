package school

import (
	"github.com/Valentina9990/top-talent/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSchoolRoutes(router *gin.RouterGroup, db *gorm.DB, authMiddleware gin.HandlerFunc) {
	schoolController := NewSchoolController(NewSchoolService(NewSchoolRepository(db)))

	router.GET("/posts", schoolController.ListPosts)

	schools := router.Group("/schools")
	{
		schools.GET("", schoolController.SearchSchools)
		schools.GET("/departments", schoolController.ListDepartments)
		schools.GET("/:userId", schoolController.GetSchoolProfile)
	}

	me := router.Group("/schools/me")
	me.Use(authMiddleware, rmiddleware.SchoolMiddleware())
	{
		me.GET("", schoolController.GetMySchool)
		me.PUT("", schoolController.UpdateMySchool)

		me.GET("/players", schoolController.GetSchoolPlayers)
		me.POST("/players", schoolController.AddPlayer)
		me.PUT("/players/:playerId", schoolController.UpdatePlayer)
		me.DELETE("/players/:playerId", schoolController.RemovePlayer)

		me.POST("/posts", schoolController.CreatePost)
		me.PUT("/posts/:id", schoolController.UpdatePost)
		me.DELETE("/posts/:id", schoolController.DeletePost)
	}
}
