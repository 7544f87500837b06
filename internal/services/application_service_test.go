package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

func applicationFixture() (*ApplicationService, *fakeApplicationRepo, *fakeJobRepo, *fakeCompanyRepo, *fakeUserRepo) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo(jobs)
	svc := NewApplicationService(applications, jobs, companies, users, &fakeMailer{})
	return svc, applications, jobs, companies, users
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	svc, _, jobs, _, _ := applicationFixture()
	jobs.Create(&models.Job{Title: "Job", CompanyID: 1})

	p := auth.Principal{UserID: 5, Role: auth.RoleUser}
	resp, appErr := svc.Apply(p, &dto.CreateApplicationRequest{JobID: 1})
	require.Nil(t, appErr)
	assert.Equal(t, models.ApplicationStatusPending, resp.Status)
	assert.Equal(t, uint(5), resp.UserID)
}

func TestApplyToMissingJob(t *testing.T) {
	svc, _, _, _, _ := applicationFixture()

	p := auth.Principal{UserID: 5, Role: auth.RoleUser}
	_, appErr := svc.Apply(p, &dto.CreateApplicationRequest{JobID: 99})
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestApplyDuplicateRejected(t *testing.T) {
	svc, _, jobs, _, _ := applicationFixture()
	jobs.Create(&models.Job{Title: "Job", CompanyID: 1})

	p := auth.Principal{UserID: 5, Role: auth.RoleUser}
	_, appErr := svc.Apply(p, &dto.CreateApplicationRequest{JobID: 1})
	require.Nil(t, appErr)

	_, appErr = svc.Apply(p, &dto.CreateApplicationRequest{JobID: 1})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrAlreadyApplied, appErr)
}

func TestApplyRequiresUserRole(t *testing.T) {
	svc, _, jobs, _, _ := applicationFixture()
	jobs.Create(&models.Job{Title: "Job", CompanyID: 1})

	p := auth.Principal{UserID: 5, Role: auth.RoleCompany}
	_, appErr := svc.Apply(p, &dto.CreateApplicationRequest{JobID: 1})
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestUpdateStatusByOwningCompany(t *testing.T) {
	svc, applications, jobs, companies, users := applicationFixture()
	users.Create(&models.User{Email: "applicant@test.com", FirstName: "A", LastName: "B", Role: models.UserRoleUser})
	companies.Create(&models.Company{Name: "Owner Co", CreatedBy: 10})
	jobs.Create(&models.Job{Title: "Job", CompanyID: 1})
	applications.Create(&models.Application{Status: models.ApplicationStatusPending, UserID: 1, JobID: 1})

	owner := auth.Principal{UserID: 10, Role: auth.RoleCompany}
	resp, appErr := svc.UpdateStatus(owner, 1, &dto.UpdateApplicationStatusRequest{Status: "accepted"})
	require.Nil(t, appErr)
	assert.Equal(t, models.ApplicationStatusAccepted, resp.Status)
}

func TestUpdateStatusByOtherCompanyForbidden(t *testing.T) {
	svc, applications, jobs, companies, users := applicationFixture()
	users.Create(&models.User{Email: "applicant@test.com", Role: models.UserRoleUser})
	companies.Create(&models.Company{Name: "Owner Co", CreatedBy: 10})
	companies.Create(&models.Company{Name: "Other Co", CreatedBy: 20})
	jobs.Create(&models.Job{Title: "Job", CompanyID: 1})
	applications.Create(&models.Application{Status: models.ApplicationStatusPending, UserID: 1, JobID: 1})

	other := auth.Principal{UserID: 20, Role: auth.RoleCompany}
	_, appErr := svc.UpdateStatus(other, 1, &dto.UpdateApplicationStatusRequest{Status: "accepted"})
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	svc, _, _, _, _ := applicationFixture()

	admin := auth.Principal{UserID: 1, Role: auth.RoleAdmin}
	_, appErr := svc.UpdateStatus(admin, 1, &dto.UpdateApplicationStatusRequest{Status: "hired"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidApplicationStatus, appErr)
}

func TestGetApplicationVisibility(t *testing.T) {
	svc, applications, jobs, companies, _ := applicationFixture()
	companies.Create(&models.Company{Name: "Owner Co", CreatedBy: 10})
	jobs.Create(&models.Job{Title: "Job", CompanyID: 1})
	applications.Create(&models.Application{Status: models.ApplicationStatusPending, UserID: 5, JobID: 1})

	// Заявитель видит
	_, appErr := svc.GetApplication(auth.Principal{UserID: 5, Role: auth.RoleUser}, 1)
	assert.Nil(t, appErr)

	// Владеющая компания видит
	_, appErr = svc.GetApplication(auth.Principal{UserID: 10, Role: auth.RoleCompany}, 1)
	assert.Nil(t, appErr)

	// Посторонний пользователь - нет
	_, appErr = svc.GetApplication(auth.Principal{UserID: 6, Role: auth.RoleUser}, 1)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestDeleteApplicationIdempotency(t *testing.T) {
	svc, applications, jobs, _, _ := applicationFixture()
	jobs.Create(&models.Job{Title: "Job", CompanyID: 1})
	applications.Create(&models.Application{Status: models.ApplicationStatusPending, UserID: 5, JobID: 1})

	p := auth.Principal{UserID: 5, Role: auth.RoleUser}
	require.Nil(t, svc.DeleteApplication(p, 1))

	appErr := svc.DeleteApplication(p, 1)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}
