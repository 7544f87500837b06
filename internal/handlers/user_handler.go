package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

// UserHandler - регистрация, вход и операции над пользователями
type UserHandler struct {
	*BaseHandler
	authService *services.AuthService
	userService *services.UserService
}

func NewUserHandler(base *BaseHandler, authService *services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		authService: authService,
		userService: userService,
	}
}

// RegisterRoutes регистрирует маршруты /users
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/signup", h.Signup)
		users.POST("/login", h.Login)
	}

	authed := rg.Group("/users")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/me", h.Me)
		authed.GET("", middleware.RequireRoles(auth.RoleAdmin), h.List)
		authed.GET("/:email", h.GetByEmail)
		authed.DELETE("/:email", h.Delete)
	}
}

// Signup godoc
// @Summary      Регистрация пользователя
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.SignupRequest true "Данные регистрации"
// @Success      201 {object} dto.UserResponse
// @Failure      400 {object} apperrors.ErrorResponse
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /users/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, appErr := h.authService.Signup(&req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary      Вход по email и паролю
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Учетные данные"
// @Success      200 {object} dto.LoginResponse
// @Failure      401 {object} apperrors.ErrorResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, appErr := h.authService.Login(&req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me возвращает текущего пользователя по токену
func (h *UserHandler) Me(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	user, appErr := h.userService.GetByID(p.UserID)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, user)
}

// List возвращает всех пользователей (только админ)
func (h *UserHandler) List(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 100)
	offset := ParseQueryInt(c, "offset", 0)

	users, appErr := h.userService.ListUsers(limit, offset)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetByEmail возвращает пользователя по email (админ или сам пользователь)
func (h *UserHandler) GetByEmail(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	user, appErr := h.userService.GetByEmail(p, c.Param("email"))
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete удаляет пользователя по email (админ или сам пользователь)
func (h *UserHandler) Delete(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	user, appErr := h.userService.GetByEmail(p, c.Param("email"))
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	if appErr := h.userService.DeleteUser(p, user.ID); appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
