package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

// JobHandler - операции над вакансиями и подбор по навыкам
type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

// RegisterRoutes регистрирует маршруты /jobs.
// Статические сегменты идут до параметризованного /:id.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("", middleware.RequireRoles(auth.RoleCompany, auth.RoleAdmin), h.Create)
		jobs.GET("", middleware.RequireRoles(auth.RoleCompany), h.Mine)
		jobs.GET("/all", middleware.RequireRoles(auth.RoleAdmin), h.List)
		jobs.GET("/company/:companyId", h.ListByCompany)
		jobs.GET("/user", middleware.RequireRoles(auth.RoleUser), h.Matching)
		jobs.GET("/user/unapplied", middleware.RequireRoles(auth.RoleUser), h.UnappliedMatching)
		jobs.GET("/:id", h.Get)
		jobs.PUT("/:id", middleware.RequireRoles(auth.RoleCompany, auth.RoleAdmin), h.Update)
		jobs.DELETE("/:id", middleware.RequireRoles(auth.RoleCompany, auth.RoleAdmin), h.Delete)
	}
}

// Create godoc
// @Summary      Публикация вакансии
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateJobRequest true "Данные вакансии"
// @Success      201 {object} dto.JobResponse
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, appErr := h.jobService.CreateJob(p, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, dto.NewJobResponse(job))
}

// Mine возвращает вакансии компании текущего пользователя
func (h *JobHandler) Mine(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	jobs, appErr := h.jobService.ListOwnJobs(p)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dto.NewJobResponseList(jobs))
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, appErr := h.jobService.ListJobs()
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dto.NewJobResponseList(jobs))
}

func (h *JobHandler) ListByCompany(c *gin.Context) {
	companyID, ok := h.ParseParamUint(c, "companyId")
	if !ok {
		return
	}
	jobs, appErr := h.jobService.ListCompanyJobs(companyID)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dto.NewJobResponseList(jobs))
}

// Matching godoc
// @Summary      Вакансии, подходящие по навыкам профиля
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.JobMatch
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /jobs/user [get]
func (h *JobHandler) Matching(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	matches, appErr := h.jobService.MatchingJobs(p)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// UnappliedMatching - подходящие вакансии без уже отправленных откликов
func (h *JobHandler) UnappliedMatching(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	matches, appErr := h.jobService.UnappliedMatchingJobs(p)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	job, appErr := h.jobService.GetJob(id)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dto.NewJobResponse(job))
}

func (h *JobHandler) Update(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, appErr := h.jobService.UpdateJob(p, id, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dto.NewJobResponse(job))
}

// Delete удаляет вакансию вместе с откликами
func (h *JobHandler) Delete(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if appErr := h.jobService.DeleteJob(p, id); appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
