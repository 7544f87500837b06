package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

// CompanyHandler - операции над компаниями
type CompanyHandler struct {
	*BaseHandler
	companyService *services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, companyService: companyService}
}

// RegisterRoutes регистрирует маршруты /companies
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.POST("", middleware.RequireRoles(auth.RoleCompany, auth.RoleAdmin), h.Create)
		companies.GET("", middleware.RequireRoles(auth.RoleAdmin, auth.RoleUser), h.List)
		companies.GET("/me", middleware.RequireRoles(auth.RoleCompany), h.Mine)
		companies.GET("/:id", h.Get)
		companies.PUT("/:id", middleware.RequireRoles(auth.RoleCompany, auth.RoleAdmin), h.Update)
		companies.DELETE("/:id", middleware.RequireRoles(auth.RoleCompany, auth.RoleAdmin), h.Delete)
	}
}

// Create godoc
// @Summary      Создание компании
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCompanyRequest true "Данные компании"
// @Success      201 {object} models.Company
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, appErr := h.companyService.CreateCompany(p, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, appErr := h.companyService.ListCompanies()
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Mine возвращает компанию текущего пользователя
func (h *CompanyHandler) Mine(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	company, appErr := h.companyService.GetOwnCompany(p)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	company, appErr := h.companyService.GetCompany(id)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, appErr := h.companyService.UpdateCompany(p, id, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Delete удаляет компанию вместе с ее вакансиями и откликами
func (h *CompanyHandler) Delete(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if appErr := h.companyService.DeleteCompany(p, id); appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}
