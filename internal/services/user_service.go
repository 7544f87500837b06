package services

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// UserService - чтение и удаление пользователей
type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// ListUsers возвращает всех пользователей (только админ, гейт на маршруте)
func (s *UserService) ListUsers(limit, offset int) ([]dto.UserResponse, *apperrors.AppError) {
	users, err := s.users.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *dto.NewUserResponse(&users[i]))
	}
	return out, nil
}

// GetByEmail возвращает пользователя по email.
// Доступно админу и самому пользователю.
func (s *UserService) GetByEmail(p auth.Principal, email string) (*dto.UserResponse, *apperrors.AppError) {
	if !p.IsAdmin() && p.Email != email {
		return nil, apperrors.ErrInsufficientPermissions
	}
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// GetByID возвращает пользователя по идентификатору
func (s *UserService) GetByID(id uint) (*dto.UserResponse, *apperrors.AppError) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// DeleteUser удаляет пользователя со всеми зависимыми записями.
// Разрешено админу и самому пользователю.
func (s *UserService) DeleteUser(p auth.Principal, id uint) *apperrors.AppError {
	if !p.IsAdmin() && p.UserID != id {
		return apperrors.ErrInsufficientPermissions
	}
	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
