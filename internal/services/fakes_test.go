package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// Фейки репозиториев в памяти для юнит-тестов сервисных гейтов.

type fakeMailer struct {
	welcomeSent []string
	statusSent  []string
}

func (m *fakeMailer) Send(to, subject, body string) error { return nil }

func (m *fakeMailer) SendWelcome(to, fullname string) error {
	m.welcomeSent = append(m.welcomeSent, to)
	return nil
}

func (m *fakeMailer) SendApplicationStatus(to, fullname, jobTitle, status string) error {
	m.statusSent = append(m.statusSent, to)
	return nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, err := r.FindByEmail(user.Email); err == nil {
		return repositories.ErrUserAlreadyExists
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(userID uint) error {
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeCompanyRepo struct {
	companies map[uint]*models.Company
	nextID    uint
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[uint]*models.Company{}, nextID: 1}
}

func (r *fakeCompanyRepo) FindByID(id uint) (*models.Company, error) {
	if c, ok := r.companies[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) FindByCreator(userID uint) (*models.Company, error) {
	for _, c := range r.companies {
		if c.CreatedBy == userID {
			return c, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) FindAll() ([]models.Company, error) {
	var out []models.Company
	for _, c := range r.companies {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Create(company *models.Company) error {
	if _, err := r.FindByCreator(company.CreatedBy); err == nil {
		return repositories.ErrCompanyAlreadyExists
	}
	company.ID = r.nextID
	r.nextID++
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) Update(company *models.Company) error {
	if _, ok := r.companies[company.ID]; !ok {
		return repositories.ErrCompanyNotFound
	}
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) Delete(companyID uint) error {
	if _, ok := r.companies[companyID]; !ok {
		return repositories.ErrCompanyNotFound
	}
	delete(r.companies, companyID)
	return nil
}

type fakeJobRepo struct {
	jobs    map[uint]*models.Job
	applied map[uint][]uint // userID -> jobIDs
	nextID  uint
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uint]*models.Job{}, applied: map[uint][]uint{}, nextID: 1}
}

func (r *fakeJobRepo) FindByID(id uint) (*models.Job, error) {
	if j, ok := r.jobs[id]; ok {
		return j, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindAll() ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) FindByCompanyID(companyID uint) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) matches(j *models.Job, skills []string) bool {
	set := map[string]struct{}{}
	for _, s := range skills {
		set[s] = struct{}{}
	}
	for _, req := range j.GetRequirements() {
		if _, ok := set[req]; ok {
			return true
		}
	}
	return false
}

func (r *fakeJobRepo) FindMatchingSkills(skills []string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if r.matches(j, skills) {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindUnappliedMatchingSkills(userID uint, skills []string) ([]models.Job, error) {
	appliedSet := map[uint]struct{}{}
	for _, id := range r.applied[userID] {
		appliedSet[id] = struct{}{}
	}
	var out []models.Job
	for _, j := range r.jobs {
		if _, applied := appliedSet[j.ID]; applied {
			continue
		}
		if r.matches(j, skills) {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	job.ID = r.nextID
	r.nextID++
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Delete(jobID uint) error {
	if _, ok := r.jobs[jobID]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, jobID)
	return nil
}

type fakeProfileRepo struct {
	profiles map[uint]*models.Profile
	nextID   uint
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uint]*models.Profile{}, nextID: 1}
}

func (r *fakeProfileRepo) FindByID(id uint) (*models.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByUserID(userID uint) (*models.Profile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindAll() ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfileRepo) Create(profile *models.Profile) error {
	if _, err := r.FindByUserID(profile.UserID); err == nil {
		return repositories.ErrProfileAlreadyExists
	}
	profile.ID = r.nextID
	r.nextID++
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) Update(profile *models.Profile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		return repositories.ErrProfileNotFound
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) Delete(id uint) error {
	if _, ok := r.profiles[id]; !ok {
		return repositories.ErrProfileNotFound
	}
	delete(r.profiles, id)
	return nil
}

type fakeApplicationRepo struct {
	applications map[uint]*models.Application
	jobs         *fakeJobRepo
	nextID       uint
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[uint]*models.Application{}, jobs: jobs, nextID: 1}
}

func (r *fakeApplicationRepo) FindByID(id uint) (*models.Application, error) {
	if a, ok := r.applications[id]; ok {
		return a, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindAll() ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByUserID(userID uint) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByJobID(jobID uint) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByCompanyID(companyID uint) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if job, ok := r.jobs.jobs[a.JobID]; ok && job.CompanyID == companyID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	for _, a := range r.applications {
		if a.UserID == application.UserID && a.JobID == application.JobID {
			return repositories.ErrDuplicateApplication
		}
	}
	application.ID = r.nextID
	r.nextID++
	r.applications[application.ID] = application
	if r.jobs != nil {
		r.jobs.applied[application.UserID] = append(r.jobs.applied[application.UserID], application.JobID)
	}
	return nil
}

func (r *fakeApplicationRepo) UpdateStatus(id uint, status models.ApplicationStatus) error {
	a, ok := r.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeApplicationRepo) Delete(id uint) error {
	if _, ok := r.applications[id]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(r.applications, id)
	return nil
}
