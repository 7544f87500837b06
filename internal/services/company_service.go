package services

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// CompanyService - управление компаниями
type CompanyService struct {
	companies repositories.CompanyRepository
}

func NewCompanyService(companies repositories.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

// CreateCompany заводит компанию для текущего пользователя.
// У одного пользователя может быть только одна компания.
func (s *CompanyService) CreateCompany(p auth.Principal, req *dto.CreateCompanyRequest) (*models.Company, *apperrors.AppError) {
	if !p.HasRole(auth.RoleCompany, auth.RoleAdmin) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	company := &models.Company{
		Name:        req.Name,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
		CreatedBy:   p.UserID,
	}
	if err := s.companies.Create(company); err != nil {
		if errors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrCompanyAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	logger.Info("company created", "company_id", company.ID, "created_by", p.UserID)
	return company, nil
}

// GetCompany возвращает компанию по идентификатору
func (s *CompanyService) GetCompany(id uint) (*models.Company, *apperrors.AppError) {
	company, err := s.companies.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "company", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

// GetOwnCompany возвращает компанию текущего пользователя
func (s *CompanyService) GetOwnCompany(p auth.Principal) (*models.Company, *apperrors.AppError) {
	company, err := s.companies.FindByCreator(p.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "company", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

// ListCompanies возвращает все компании
func (s *CompanyService) ListCompanies() ([]models.Company, *apperrors.AppError) {
	companies, err := s.companies.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return companies, nil
}

// UpdateCompany обновляет компанию. Разрешено владельцу и админу.
func (s *CompanyService) UpdateCompany(p auth.Principal, id uint, req *dto.UpdateCompanyRequest) (*models.Company, *apperrors.AppError) {
	company, appErr := s.GetCompany(id)
	if appErr != nil {
		return nil, appErr
	}
	if !p.IsAdmin() && company.CreatedBy != p.UserID {
		return nil, apperrors.ErrNotResourceOwner
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.WebsiteURL != nil {
		company.WebsiteURL = *req.WebsiteURL
	}
	if err := s.companies.Update(company); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

// DeleteCompany удаляет компанию вместе с ее вакансиями и откликами.
// Разрешено владельцу и админу.
func (s *CompanyService) DeleteCompany(p auth.Principal, id uint) *apperrors.AppError {
	company, appErr := s.GetCompany(id)
	if appErr != nil {
		return appErr
	}
	if !p.IsAdmin() && company.CreatedBy != p.UserID {
		return apperrors.ErrNotResourceOwner
	}
	if err := s.companies.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrNotFound(err, "company", "Company not found")
		}
		return apperrors.InternalError(err)
	}
	logger.Info("company deleted", "company_id", id, "by", p.UserID)
	return nil
}
