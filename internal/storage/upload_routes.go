package storage

import "github.com/gin-gonic/gin"

func RegisterUploadRoutes(router *gin.RouterGroup, service *UploadService, authMiddleware gin.HandlerFunc) {
	uploadController := NewUploadController(service)

	uploads := router.Group("/uploads")
	uploads.Use(authMiddleware)
	{
		uploads.POST("/presigned-url", uploadController.CreatePresignedURL)
		uploads.DELETE("", uploadController.DeleteFile)
	}
}
