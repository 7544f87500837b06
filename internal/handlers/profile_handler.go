package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

// ProfileHandler - профили соискателей
type ProfileHandler struct {
	*BaseHandler
	profileService *services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

// RegisterRoutes регистрирует маршруты /profiles
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.POST("", middleware.RequireRoles(auth.RoleUser), h.Create)
		profiles.GET("", middleware.RequireRoles(auth.RoleAdmin), h.List)
		profiles.GET("/me", middleware.RequireRoles(auth.RoleUser), h.Mine)
		profiles.GET("/:id", h.Get)
		profiles.PUT("/:id", h.Update)
		profiles.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary      Создание профиля
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateProfileRequest true "Данные профиля"
// @Success      201 {object} dto.ProfileResponse
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /profiles [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, appErr := h.profileService.CreateProfile(p, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// List возвращает все профили (только админ)
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, appErr := h.profileService.ListProfiles()
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// Mine возвращает профиль текущего пользователя
func (h *ProfileHandler) Mine(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	profile, appErr := h.profileService.GetOwnProfile(p)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	profile, appErr := h.profileService.GetProfile(p, id)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, appErr := h.profileService.UpdateProfile(p, id, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if appErr := h.profileService.DeleteProfile(p, id); appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted successfully"})
}
