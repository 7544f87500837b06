package services

import (
	"errors"

	"jobboard_backend/internal/algorithms"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// JobService - управление вакансиями и подбор по навыкам
type JobService struct {
	jobs      repositories.JobRepository
	companies repositories.CompanyRepository
	profiles  repositories.ProfileRepository
}

func NewJobService(jobs repositories.JobRepository, companies repositories.CompanyRepository, profiles repositories.ProfileRepository) *JobService {
	return &JobService{jobs: jobs, companies: companies, profiles: profiles}
}

// resolveCompanyID определяет компанию, под которой публикуется вакансия.
// Компания публикует под своей; админ указывает companyId явно.
func (s *JobService) resolveCompanyID(p auth.Principal, requested uint) (uint, *apperrors.AppError) {
	if p.IsAdmin() {
		if requested == 0 {
			return 0, apperrors.NewBadRequestError("companyId is required for admin")
		}
		if _, err := s.companies.FindByID(requested); err != nil {
			if errors.Is(err, repositories.ErrCompanyNotFound) {
				return 0, apperrors.ErrNotFound(err, "company", "Company not found")
			}
			return 0, apperrors.InternalError(err)
		}
		return requested, nil
	}

	company, err := s.companies.FindByCreator(p.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return 0, apperrors.NewBadRequestError("Create a company before posting jobs")
		}
		return 0, apperrors.InternalError(err)
	}
	if requested != 0 && requested != company.ID {
		return 0, apperrors.ErrNotResourceOwner
	}
	return company.ID, nil
}

// CreateJob публикует вакансию
func (s *JobService) CreateJob(p auth.Principal, req *dto.CreateJobRequest) (*models.Job, *apperrors.AppError) {
	if !p.HasRole(auth.RoleCompany, auth.RoleAdmin) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	companyID, appErr := s.resolveCompanyID(p, req.CompanyID)
	if appErr != nil {
		return nil, appErr
	}

	job := &models.Job{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: models.StringList(req.Requirements),
		Location:     req.Location,
		SalaryRange:  req.SalaryRange,
		CompanyID:    companyID,
	}
	if err := s.jobs.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.Info("job created", "job_id", job.ID, "company_id", companyID)
	return job, nil
}

// GetJob возвращает вакансию по идентификатору
func (s *JobService) GetJob(id uint) (*models.Job, *apperrors.AppError) {
	job, err := s.jobs.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// ListJobs возвращает все вакансии
func (s *JobService) ListJobs() ([]models.Job, *apperrors.AppError) {
	jobs, err := s.jobs.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// ListOwnJobs возвращает вакансии компании принципала
func (s *JobService) ListOwnJobs(p auth.Principal) ([]models.Job, *apperrors.AppError) {
	company, err := s.companies.FindByCreator(p.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "company", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}
	jobs, err := s.jobs.FindByCompanyID(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// ListCompanyJobs возвращает вакансии одной компании
func (s *JobService) ListCompanyJobs(companyID uint) ([]models.Job, *apperrors.AppError) {
	if _, err := s.companies.FindByID(companyID); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "company", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}
	jobs, err := s.jobs.FindByCompanyID(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// ownsJob проверяет, что вакансия принадлежит компании принципала
func (s *JobService) ownsJob(p auth.Principal, job *models.Job) (bool, *apperrors.AppError) {
	if p.IsAdmin() {
		return true, nil
	}
	company, err := s.companies.FindByCreator(p.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}
	return company.ID == job.CompanyID, nil
}

// UpdateJob обновляет вакансию. Разрешено владеющей компании и админу.
func (s *JobService) UpdateJob(p auth.Principal, id uint, req *dto.UpdateJobRequest) (*models.Job, *apperrors.AppError) {
	job, appErr := s.GetJob(id)
	if appErr != nil {
		return nil, appErr
	}
	owns, appErr := s.ownsJob(p, job)
	if appErr != nil {
		return nil, appErr
	}
	if !owns {
		return nil, apperrors.ErrNotResourceOwner
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = models.StringList(req.Requirements)
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.SalaryRange != nil {
		job.SalaryRange = *req.SalaryRange
	}
	if err := s.jobs.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// DeleteJob удаляет вакансию вместе с откликами.
// Разрешено владеющей компании и админу.
func (s *JobService) DeleteJob(p auth.Principal, id uint) *apperrors.AppError {
	job, appErr := s.GetJob(id)
	if appErr != nil {
		return appErr
	}
	owns, appErr := s.ownsJob(p, job)
	if appErr != nil {
		return appErr
	}
	if !owns {
		return apperrors.ErrNotResourceOwner
	}
	if err := s.jobs.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return apperrors.InternalError(err)
	}
	logger.Info("job deleted", "job_id", id, "by", p.UserID)
	return nil
}

// skillsOf достает навыки профиля принципала
func (s *JobService) skillsOf(p auth.Principal) ([]string, *apperrors.AppError) {
	profile, err := s.profiles.FindByUserID(p.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewBadRequestError("Create a profile with skills to get job matches")
		}
		return nil, apperrors.InternalError(err)
	}
	skills := profile.GetSkills()
	if len(skills) == 0 {
		return nil, apperrors.NewBadRequestError("Create a profile with skills to get job matches")
	}
	return skills, nil
}

// MatchingJobs возвращает вакансии, требования которых пересекаются
// с навыками профиля, вместе со списком совпавших навыков.
func (s *JobService) MatchingJobs(p auth.Principal) ([]dto.JobMatch, *apperrors.AppError) {
	skills, appErr := s.skillsOf(p)
	if appErr != nil {
		return nil, appErr
	}
	jobs, err := s.jobs.FindMatchingSkills(skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return annotateMatches(jobs, skills), nil
}

// UnappliedMatchingJobs - то же, но без вакансий, на которые
// пользователь уже откликался.
func (s *JobService) UnappliedMatchingJobs(p auth.Principal) ([]dto.JobMatch, *apperrors.AppError) {
	skills, appErr := s.skillsOf(p)
	if appErr != nil {
		return nil, appErr
	}
	jobs, err := s.jobs.FindUnappliedMatchingSkills(p.UserID, skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return annotateMatches(jobs, skills), nil
}

func annotateMatches(jobs []models.Job, skills []string) []dto.JobMatch {
	out := make([]dto.JobMatch, 0, len(jobs))
	for i := range jobs {
		out = append(out, dto.JobMatch{
			JobResponse:   dto.NewJobResponse(&jobs[i]),
			MatchedSkills: algorithms.MatchedSkills(jobs[i].GetRequirements(), skills),
		})
	}
	return out
}
