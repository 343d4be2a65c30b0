package player

import (
	"net/http"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/pkg/responses"
	"github.com/Valentina9990/top-talent/pkg/validator"
	"github.com/gin-gonic/gin"
)

// PlayerController handles player directory and self-service requests.
type PlayerController struct {
	service *PlayerService
}

func NewPlayerController(service *PlayerService) *PlayerController {
	return &PlayerController{service: service}
}

// SearchPlayers godoc
// @Summary      Search players
// @Description  Lists players newest first. Name and zone are case-insensitive substrings; position is an exact name; age_range is one of "15-16 años", "17-18 años", "+18 años".
// @Tags         Players
// @Produce      json
// @Param        name      query string false "Player name contains"
// @Param        position  query string false "Position name"
// @Param        age_range query string false "Age range bucket"
// @Param        zone      query string false "Zone contains"
// @Success      200 {object} responses.SuccessResponse{data=[]PlayerView}
// @Router       /players [get]
func (pc *PlayerController) SearchPlayers(c *gin.Context) {
	var filters SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	players := pc.service.SearchPlayers(c.Request.Context(), filters)
	responses.SendSuccess(c, http.StatusOK, "Players retrieved", players)
}

// GetPlayerProfile godoc
// @Summary      Get a player's public profile
// @Tags         Players
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} responses.SuccessResponse{data=models.PlayerProfile}
// @Failure      404 {object} responses.ErrorResponse "Profile not found"
// @Router       /players/{userId} [get]
func (pc *PlayerController) GetPlayerProfile(c *gin.Context) {
	profile, err := pc.service.GetPlayerProfile(c.Request.Context(), common.OptionalPrincipal(c), c.Param("userId"))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved", profile)
}

// GetMyProfile godoc
// @Summary      Get own player profile
// @Tags         Players
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=models.PlayerProfile}
// @Failure      401 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /players/me [get]
func (pc *PlayerController) GetMyProfile(c *gin.Context) {
	profile, err := pc.service.GetPlayerProfile(c.Request.Context(), common.OptionalPrincipal(c), "")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateMyProfile godoc
// @Summary      Create or update own player profile
// @Description  Omitted or blank text fields are cleared. Omitted stats keep their value. position_ids replaces the full position set when present.
// @Tags         Players
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        profile body UpdateProfileInput true "Profile form"
// @Success      200 {object} responses.SuccessResponse{data=models.PlayerProfile}
// @Failure      401 {object} responses.ErrorResponse
// @Failure      422 {object} responses.ErrorResponse "Invalid fields or unknown position"
// @Failure      500 {object} responses.ErrorResponse
// @Router       /players/me [put]
func (pc *PlayerController) UpdateMyProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	profile, err := pc.service.UpdatePlayerProfile(c.Request.Context(), common.OptionalPrincipal(c), input)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile updated", profile)
}

// UpdateAvatar godoc
// @Summary      Update own avatar
// @Tags         Players
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body MediaURLInput true "Avatar URL"
// @Success      200 {object} responses.SuccessResponse
// @Failure      404 {object} responses.ErrorResponse "Profile not found"
// @Router       /players/me/avatar [put]
func (pc *PlayerController) UpdateAvatar(c *gin.Context) {
	var input MediaURLInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	if err := pc.service.UpdateAvatar(c.Request.Context(), common.OptionalPrincipal(c), input.URL); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Avatar updated", nil)
}

// UpdateProfileVideo godoc
// @Summary      Update own presentation video
// @Tags         Players
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body MediaURLInput true "Video URL"
// @Success      200 {object} responses.SuccessResponse
// @Router       /players/me/profile-video [put]
func (pc *PlayerController) UpdateProfileVideo(c *gin.Context) {
	var input MediaURLInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	if err := pc.service.UpdateProfileVideo(c.Request.Context(), common.OptionalPrincipal(c), input.URL); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile video updated", nil)
}

// ListMyVideos godoc
// @Summary      List own videos
// @Tags         Players
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=[]models.PlayerVideo}
// @Router       /players/me/videos [get]
func (pc *PlayerController) ListMyVideos(c *gin.Context) {
	videos, err := pc.service.ListMyVideos(c.Request.Context(), common.OptionalPrincipal(c))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Videos retrieved", videos)
}

// CreateVideo godoc
// @Summary      Add a video
// @Tags         Players
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        video body CreateVideoInput true "Video"
// @Success      201 {object} responses.SuccessResponse{data=models.PlayerVideo}
// @Router       /players/me/videos [post]
func (pc *PlayerController) CreateVideo(c *gin.Context) {
	var input CreateVideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	video, err := pc.service.CreateVideo(c.Request.Context(), common.OptionalPrincipal(c), input)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Video added", video)
}

// UpdateVideo godoc
// @Summary      Update a video
// @Tags         Players
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path string           true "Video ID"
// @Param        video body UpdateVideoInput true "Fields to change"
// @Success      200 {object} responses.SuccessResponse{data=models.PlayerVideo}
// @Failure      404 {object} responses.ErrorResponse "Not found or not permitted"
// @Router       /players/me/videos/{id} [put]
func (pc *PlayerController) UpdateVideo(c *gin.Context) {
	var input UpdateVideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	video, err := pc.service.UpdateVideo(c.Request.Context(), common.OptionalPrincipal(c), c.Param("id"), input)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Video updated", video)
}

// DeleteVideo godoc
// @Summary      Delete a video
// @Tags         Players
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      404 {object} responses.ErrorResponse "Not found or not permitted"
// @Router       /players/me/videos/{id} [delete]
func (pc *PlayerController) DeleteVideo(c *gin.Context) {
	if err := pc.service.DeleteVideo(c.Request.Context(), common.OptionalPrincipal(c), c.Param("id")); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Video deleted", nil)
}

// CreateAchievement godoc
// @Summary      Add an achievement
// @Tags         Players
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        achievement body AchievementInput true "Achievement"
// @Success      201 {object} responses.SuccessResponse{data=models.PlayerAchievement}
// @Router       /players/me/achievements [post]
func (pc *PlayerController) CreateAchievement(c *gin.Context) {
	var input AchievementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	achievement, err := pc.service.CreateAchievement(c.Request.Context(), common.OptionalPrincipal(c), input)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Achievement added", achievement)
}

// UpdateAchievement godoc
// @Summary      Update an achievement
// @Tags         Players
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id          path string           true "Achievement ID"
// @Param        achievement body AchievementInput true "Achievement"
// @Success      200 {object} responses.SuccessResponse{data=models.PlayerAchievement}
// @Failure      404 {object} responses.ErrorResponse "Not found or not permitted"
// @Router       /players/me/achievements/{id} [put]
func (pc *PlayerController) UpdateAchievement(c *gin.Context) {
	var input AchievementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	achievement, err := pc.service.UpdateAchievement(c.Request.Context(), common.OptionalPrincipal(c), c.Param("id"), input)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Achievement updated", achievement)
}

// DeleteAchievement godoc
// @Summary      Delete an achievement
// @Tags         Players
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Achievement ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      404 {object} responses.ErrorResponse "Not found or not permitted"
// @Router       /players/me/achievements/{id} [delete]
func (pc *PlayerController) DeleteAchievement(c *gin.Context) {
	if err := pc.service.DeleteAchievement(c.Request.Context(), common.OptionalPrincipal(c), c.Param("id")); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Achievement deleted", nil)
}
