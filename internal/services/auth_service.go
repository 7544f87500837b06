package services

import (
	"errors"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// AuthService - регистрация и вход
type AuthService struct {
	users  repositories.UserRepository
	mailer email.Provider
}

func NewAuthService(users repositories.UserRepository, mailer email.Provider) *AuthService {
	return &AuthService{users: users, mailer: mailer}
}

// Signup регистрирует нового пользователя с ролью user или company.
// Пароль проверяется политикой сложности до хеширования.
func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.UserResponse, *apperrors.AppError) {
	if req.Role != auth.RoleUser && req.Role != auth.RoleCompany {
		return nil, apperrors.ErrInvalidUserRole
	}
	if !auth.IsStrongPassword(req.Password) {
		return nil, apperrors.ErrWeakPassword
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid date of birth, expected YYYY-MM-DD")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  dob,
		Role:         models.UserRole(req.Role),
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Письмо не должно ронять регистрацию
	go func() {
		if err := s.mailer.SendWelcome(user.Email, user.Fullname()); err != nil {
			logger.WithError(err).Warn("welcome email failed", "email", user.Email)
		}
	}()

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return dto.NewUserResponse(user), nil
}

// Login проверяет учетные данные и выдает JWT.
// Ответ при неизвестном email и при неверном пароле одинаковый.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, *apperrors.AppError) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Fullname(), string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user logged in", "user_id", user.ID)
	return &dto.LoginResponse{
		Token:    token,
		ID:       user.ID,
		Email:    user.Email,
		Fullname: user.Fullname(),
		Role:     string(user.Role),
	}, nil
}
