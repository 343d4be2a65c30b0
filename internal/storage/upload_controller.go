package storage

import (
	"net/http"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/pkg/responses"
	"github.com/Valentina9990/top-talent/pkg/validator"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	service *UploadService
}

func NewUploadController(service *UploadService) *UploadController {
	return &UploadController{service: service}
}

// CreatePresignedURL godoc
// @Summary      Get a presigned upload URL
// @Description  Validates file type and size and returns a URL the client can PUT the file to.
// @Tags         Uploads
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body PresignRequest true "File metadata"
// @Success      200 {object} responses.SuccessResponse{data=PresignedUpload}
// @Failure      401 {object} responses.ErrorResponse "Not authenticated"
// @Failure      422 {object} responses.ErrorResponse "Invalid file"
// @Failure      500 {object} responses.ErrorResponse "Storage error"
// @Router       /uploads/presigned-url [post]
func (uc *UploadController) CreatePresignedURL(c *gin.Context) {
	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	upload, err := uc.service.CreatePresignedUpload(c.Request.Context(), common.OptionalPrincipal(c), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Upload URL generated", upload)
}

// DeleteFile godoc
// @Summary      Delete an uploaded file
// @Tags         Uploads
// @Security     BearerAuth
// @Produce      json
// @Param        url query string true "Public file URL"
// @Success      200 {object} responses.SuccessResponse
// @Failure      401 {object} responses.ErrorResponse "Not authenticated"
// @Failure      403 {object} responses.ErrorResponse "File belongs to another user"
// @Failure      422 {object} responses.ErrorResponse "Invalid URL"
// @Router       /uploads [delete]
func (uc *UploadController) DeleteFile(c *gin.Context) {
	fileURL := c.Query("url")
	if fileURL == "" {
		responses.SendValidationError(c, map[string]string{"url": "This field is required"})
		return
	}

	if err := uc.service.DeleteFile(c.Request.Context(), common.OptionalPrincipal(c), fileURL); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "File deleted", nil)
}
