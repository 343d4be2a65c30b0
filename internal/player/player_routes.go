package player

import (
	"github.com/Valentina9990/top-talent/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, authMiddleware gin.HandlerFunc) {
	playerController := NewPlayerController(NewPlayerService(NewPlayerRepository(db)))

	players := router.Group("/players")
	{
		players.GET("", playerController.SearchPlayers)
		players.GET("/:userId", playerController.GetPlayerProfile)
	}

	me := router.Group("/players/me")
	me.Use(authMiddleware, rmiddleware.PlayerMiddleware())
	{
		me.GET("", playerController.GetMyProfile)
		me.PUT("", playerController.UpdateMyProfile)
		me.PUT("/avatar", playerController.UpdateAvatar)
		me.PUT("/profile-video", playerController.UpdateProfileVideo)

		me.GET("/videos", playerController.ListMyVideos)
		me.POST("/videos", playerController.CreateVideo)
		me.PUT("/videos/:id", playerController.UpdateVideo)
		me.DELETE("/videos/:id", playerController.DeleteVideo)

		me.POST("/achievements", playerController.CreateAchievement)
		me.PUT("/achievements/:id", playerController.UpdateAchievement)
		me.DELETE("/achievements/:id", playerController.DeleteAchievement)
	}
}
