package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

// ApplicationHandler - отклики на вакансии
type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

// RegisterRoutes регистрирует маршруты /applications
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.POST("", middleware.RequireRoles(auth.RoleUser), h.Apply)
		applications.GET("", middleware.RequireRoles(auth.RoleAdmin), h.ListAll)
		applications.GET("/me", middleware.RequireRoles(auth.RoleUser), h.ListMine)
		applications.GET("/company", middleware.RequireRoles(auth.RoleCompany), h.ListForCompany)
		applications.GET("/job/:jobId", middleware.RequireRoles(auth.RoleCompany, auth.RoleAdmin), h.ListByJob)
		applications.GET("/:id", h.Get)
		applications.PATCH("/:id/status", middleware.RequireRoles(auth.RoleCompany, auth.RoleAdmin), h.UpdateStatus)
		applications.DELETE("/:id", h.Delete)
	}
}

// Apply godoc
// @Summary      Отклик на вакансию
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateApplicationRequest true "Вакансия"
// @Success      201 {object} dto.ApplicationResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, appErr := h.applicationService.Apply(p, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, application)
}

// ListAll возвращает все отклики (только админ)
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	apps, appErr := h.applicationService.ListAll()
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListMine возвращает отклики текущего пользователя
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	apps, appErr := h.applicationService.ListMine(p)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListForCompany возвращает отклики на все вакансии компании принципала
func (h *ApplicationHandler) ListForCompany(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	apps, appErr := h.applicationService.ListForCompany(p)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListByJob возвращает отклики на вакансию (владеющая компания или админ)
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	jobID, ok := h.ParseParamUint(c, "jobId")
	if !ok {
		return
	}
	apps, appErr := h.applicationService.ListByJob(p, jobID)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	application, appErr := h.applicationService.GetApplication(p, id)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, application)
}

// UpdateStatus godoc
// @Summary      Смена статуса отклика
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID отклика"
// @Param        request body dto.UpdateApplicationStatusRequest true "Новый статус"
// @Success      200 {object} dto.ApplicationResponse
// @Failure      400 {object} apperrors.ErrorResponse
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, appErr := h.applicationService.UpdateStatus(p, id, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, application)
}

// Delete отзывает отклик (заявитель, владеющая компания или админ)
func (h *ApplicationHandler) Delete(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if appErr := h.applicationService.DeleteApplication(p, id); appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
