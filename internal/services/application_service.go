package services

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// ApplicationService - отклики на вакансии
type ApplicationService struct {
	applications repositories.ApplicationRepository
	jobs         repositories.JobRepository
	companies    repositories.CompanyRepository
	users        repositories.UserRepository
	mailer       email.Provider
}

func NewApplicationService(
	applications repositories.ApplicationRepository,
	jobs repositories.JobRepository,
	companies repositories.CompanyRepository,
	users repositories.UserRepository,
	mailer email.Provider,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		companies:    companies,
		users:        users,
		mailer:       mailer,
	}
}

// Apply создает отклик текущего пользователя на вакансию.
// Повторный отклик на ту же вакансию запрещен.
func (s *ApplicationService) Apply(p auth.Principal, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, *apperrors.AppError) {
	if !p.HasRole(auth.RoleUser) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if _, err := s.jobs.FindByID(req.JobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		Status: models.ApplicationStatusPending,
		UserID: p.UserID,
		JobID:  req.JobID,
	}
	if err := s.applications.Create(application); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("application created", "application_id", application.ID, "job_id", req.JobID, "user_id", p.UserID)
	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

// canSeeApplication: заявитель, владеющая компания или админ
func (s *ApplicationService) canSeeApplication(p auth.Principal, a *models.Application) (bool, *apperrors.AppError) {
	if p.IsAdmin() || a.UserID == p.UserID {
		return true, nil
	}
	return s.ownsJobID(p, a.JobID)
}

func (s *ApplicationService) ownsJobID(p auth.Principal, jobID uint) (bool, *apperrors.AppError) {
	company, err := s.companies.FindByCreator(p.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}
	return job.CompanyID == company.ID, nil
}

// GetApplication возвращает отклик по идентификатору
func (s *ApplicationService) GetApplication(p auth.Principal, id uint) (*dto.ApplicationResponse, *apperrors.AppError) {
	application, err := s.applications.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	ok, appErr := s.canSeeApplication(p, application)
	if appErr != nil {
		return nil, appErr
	}
	if !ok {
		return nil, apperrors.ErrNotResourceOwner
	}
	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

// ListAll возвращает все отклики (только админ, гейт на маршруте)
func (s *ApplicationService) ListAll() ([]dto.ApplicationResponse, *apperrors.AppError) {
	apps, err := s.applications.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(apps), nil
}

// ListMine возвращает отклики текущего пользователя
func (s *ApplicationService) ListMine(p auth.Principal) ([]dto.ApplicationResponse, *apperrors.AppError) {
	apps, err := s.applications.FindByUserID(p.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(apps), nil
}

// ListByJob возвращает отклики на вакансию.
// Доступно владеющей компании и админу.
func (s *ApplicationService) ListByJob(p auth.Principal, jobID uint) ([]dto.ApplicationResponse, *apperrors.AppError) {
	if _, err := s.jobs.FindByID(jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !p.IsAdmin() {
		owns, appErr := s.ownsJobID(p, jobID)
		if appErr != nil {
			return nil, appErr
		}
		if !owns {
			return nil, apperrors.ErrNotResourceOwner
		}
	}
	apps, err := s.applications.FindByJobID(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(apps), nil
}

// ListForCompany возвращает отклики на все вакансии компании принципала
func (s *ApplicationService) ListForCompany(p auth.Principal) ([]dto.ApplicationResponse, *apperrors.AppError) {
	company, err := s.companies.FindByCreator(p.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "company", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}
	apps, err := s.applications.FindByCompanyID(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(apps), nil
}

// UpdateStatus переводит отклик в accepted или rejected.
// Разрешено владеющей компании и админу; заявителю приходит письмо.
func (s *ApplicationService) UpdateStatus(p auth.Principal, id uint, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, *apperrors.AppError) {
	status := models.ApplicationStatus(req.Status)
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	application, err := s.applications.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !p.IsAdmin() {
		owns, appErr := s.ownsJobID(p, application.JobID)
		if appErr != nil {
			return nil, appErr
		}
		if !owns {
			return nil, apperrors.ErrNotResourceOwner
		}
	}

	if err := s.applications.UpdateStatus(id, status); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	application.Status = status

	s.notifyStatusChange(application)

	logger.Info("application status updated", "application_id", id, "status", status, "by", p.UserID)
	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

// notifyStatusChange шлет письмо заявителю. Ошибки только логируются.
func (s *ApplicationService) notifyStatusChange(a *models.Application) {
	applicant := a.User
	if applicant == nil {
		found, err := s.users.FindByID(a.UserID)
		if err != nil {
			logger.WithError(err).Warn("status email skipped, applicant lookup failed", "application_id", a.ID)
			return
		}
		applicant = found
	}
	jobTitle := ""
	if a.Job != nil {
		jobTitle = a.Job.Title
	}

	go func(to, fullname, title, status string) {
		if err := s.mailer.SendApplicationStatus(to, fullname, title, status); err != nil {
			logger.WithError(err).Warn("status email failed", "email", to)
		}
	}(applicant.Email, applicant.Fullname(), jobTitle, string(a.Status))
}

// DeleteApplication отзывает отклик.
// Разрешено заявителю, владеющей компании и админу.
func (s *ApplicationService) DeleteApplication(p auth.Principal, id uint) *apperrors.AppError {
	application, err := s.applications.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return apperrors.InternalError(err)
	}
	ok, appErr := s.canSeeApplication(p, application)
	if appErr != nil {
		return appErr
	}
	if !ok {
		return apperrors.ErrNotResourceOwner
	}
	if err := s.applications.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return apperrors.InternalError(err)
	}
	logger.Info("application deleted", "application_id", id, "by", p.UserID)
	return nil
}
