package school

import (
	"net/http"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/pkg/responses"
	"github.com/Valentina9990/top-talent/pkg/validator"
	"github.com/gin-gonic/gin"
)

type SchoolController struct {
	service *SchoolService
}

func NewSchoolController(service *SchoolService) *SchoolController {
	return &SchoolController{service: service}
}

// SearchSchools godoc
// @Summary      Search schools
// @Description  Lists schools newest first with roster and post counts. Name, department and city are case-insensitive substrings; category is an exact name.
// @Tags         Schools
// @Produce      json
// @Param        name       query string false "School name contains"
// @Param        department query string false "Department contains"
// @Param        city       query string false "City contains"
// @Param        category   query string false "Category name"
// @Success      200 {object} responses.SuccessResponse{data=[]SchoolView}
// @Router       /schools [get]
func (sc *SchoolController) SearchSchools(c *gin.Context) {
	var filters SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Schools retrieved", sc.service.SearchSchools(c.Request.Context(), filters))
}

// ListDepartments godoc
// @Summary      List departments with schools
// @Tags         Schools
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=[]string}
// @Router       /schools/departments [get]
func (sc *SchoolController) ListDepartments(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Departments retrieved", sc.service.ListDepartments(c.Request.Context()))
}

// GetSchoolProfile godoc
// @Summary      Get a school's public profile
// @Tags         Schools
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} responses.SuccessResponse{data=models.SchoolProfile}
// @Failure      404 {object} responses.ErrorResponse "School profile not found"
// @Router       /schools/{userId} [get]
func (sc *SchoolController) GetSchoolProfile(c *gin.Context) {
	school, err := sc.service.GetSchoolProfile(c.Request.Context(), common.OptionalPrincipal(c), c.Param("userId"))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "School profile retrieved", school)
}

// GetMySchool godoc
// @Summary      Get own school profile
// @Tags         Schools
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=models.SchoolProfile}
// @Router       /schools/me [get]
func (sc *SchoolController) GetMySchool(c *gin.Context) {
	school, err := sc.service.GetSchoolProfile(c.Request.Context(), common.OptionalPrincipal(c), "")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "School profile retrieved", school)
}

// UpdateMySchool godoc
// @Summary      Update own school profile
// @Description  Omitted fields are unchanged and "" clears a field. category_ids replaces the whole category set when present.
// @Tags         Schools
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        profile body UpdateProfileInput true "Profile fields"
// @Success      200 {object} responses.SuccessResponse{data=models.SchoolProfile}
// @Failure      404 {object} responses.ErrorResponse "School profile not found"
// @Failure      422 {object} responses.ErrorResponse "Invalid fields or unknown category"
// @Router       /schools/me [put]
func (sc *SchoolController) UpdateMySchool(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	school, err := sc.service.UpdateSchoolProfile(c.Request.Context(), common.OptionalPrincipal(c), input)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "School profile updated", school)
}

// GetSchoolPlayers godoc
// @Summary      List own roster
// @Tags         Schools
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=[]models.PlayerProfile}
// @Router       /schools/me/players [get]
func (sc *SchoolController) GetSchoolPlayers(c *gin.Context) {
	players, err := sc.service.GetSchoolPlayers(c.Request.Context(), common.OptionalPrincipal(c))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Players retrieved", players)
}

// AddPlayer godoc
// @Summary      Add a player to the roster by email
// @Tags         Schools
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body AddPlayerInput true "Player email"
// @Success      200 {object} responses.SuccessResponse{data=models.PlayerProfile}
// @Failure      404 {object} responses.ErrorResponse "No player with that email"
// @Failure      409 {object} responses.ErrorResponse "Player belongs to another school"
// @Router       /schools/me/players [post]
func (sc *SchoolController) AddPlayer(c *gin.Context) {
	var input AddPlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	player, err := sc.service.AddPlayerToSchool(c.Request.Context(), common.OptionalPrincipal(c), input.Email)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player added", player)
}

// UpdatePlayer godoc
// @Summary      Update a roster player's sports data
// @Description  Omitted fields keep their value; "" clears category_id or preferred_foot. position_ids replaces the set when present.
// @Tags         Schools
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        playerId path string            true "Player profile ID"
// @Param        request  body UpdatePlayerInput true "Fields to change"
// @Success      200 {object} responses.SuccessResponse{data=models.PlayerProfile}
// @Failure      404 {object} responses.ErrorResponse "Not on this roster"
// @Router       /schools/me/players/{playerId} [put]
func (sc *SchoolController) UpdatePlayer(c *gin.Context) {
	var input UpdatePlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	player, err := sc.service.UpdateSchoolPlayerData(c.Request.Context(), common.OptionalPrincipal(c), c.Param("playerId"), input)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated", player)
}

// RemovePlayer godoc
// @Summary      Remove a player from the roster
// @Tags         Schools
// @Security     BearerAuth
// @Produce      json
// @Param        playerId path string true "Player profile ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      404 {object} responses.ErrorResponse "Not on this roster"
// @Router       /schools/me/players/{playerId} [delete]
func (sc *SchoolController) RemovePlayer(c *gin.Context) {
	if err := sc.service.RemovePlayerFromSchool(c.Request.Context(), common.OptionalPrincipal(c), c.Param("playerId")); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player removed", nil)
}

// ListPosts godoc
// @Summary      List school posts
// @Tags         Posts
// @Produce      json
// @Param        school_id query string false "Only posts of this school profile"
// @Success      200 {object} responses.SuccessResponse{data=[]models.SchoolPost}
// @Router       /posts [get]
func (sc *SchoolController) ListPosts(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Posts retrieved", sc.service.ListPosts(c.Request.Context(), c.Query("school_id")))
}

// CreatePost godoc
// @Summary      Publish a post for own school
// @Tags         Posts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        post body CreatePostInput true "Post"
// @Success      201 {object} responses.SuccessResponse{data=models.SchoolPost}
// @Router       /schools/me/posts [post]
func (sc *SchoolController) CreatePost(c *gin.Context) {
	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	post, err := sc.service.CreatePost(c.Request.Context(), common.OptionalPrincipal(c), input)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Post created", post)
}

// UpdatePost godoc
// @Summary      Update own post
// @Tags         Posts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string          true "Post ID"
// @Param        post body UpdatePostInput true "Fields to change"
// @Success      200 {object} responses.SuccessResponse{data=models.SchoolPost}
// @Failure      404 {object} responses.ErrorResponse "Not found or not permitted"
// @Router       /schools/me/posts/{id} [put]
func (sc *SchoolController) UpdatePost(c *gin.Context) {
	var input UpdatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	post, err := sc.service.UpdatePost(c.Request.Context(), common.OptionalPrincipal(c), c.Param("id"), input)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Post updated", post)
}

// DeletePost godoc
// @Summary      Delete own post
// @Tags         Posts
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      404 {object} responses.ErrorResponse "Not found or not permitted"
// @Router       /schools/me/posts/{id} [delete]
func (sc *SchoolController) DeletePost(c *gin.Context) {
	if err := sc.service.DeletePost(c.Request.Context(), common.OptionalPrincipal(c), c.Param("id")); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Post deleted", nil)
}
