package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// --- Фабричные функции ---

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль.
// Текст единый: не раскрываем, что именно не совпало.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - роль не входит в allow-list операции
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Access denied. Insufficient permissions.",
	http.StatusForbidden,
)

// ErrNotResourceOwner - роль прошла, но ресурс принадлежит другому владельцу
var ErrNotResourceOwner = New(
	CodeForbidden,
	"auth",
	"Access denied. You do not own this resource.",
	http.StatusForbidden,
)

// ErrEmailAlreadyExists - email уже используется
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusConflict,
)

// ErrWeakPassword - пароль не проходит политику сложности
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters long, include one uppercase letter, one lowercase letter, one number, and one special character.",
	http.StatusBadRequest,
)

// ErrInvalidUserRole - роль вне множества {user, company}
var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"validation",
	"Invalid role. Role must be 'user' or 'company'.",
	http.StatusBadRequest,
)

// --- Company / Job / Application / Profile ---

// ErrCompanyAlreadyExists - у пользователя уже есть компания
var ErrCompanyAlreadyExists = New(
	CodeAlreadyExists,
	"company",
	"User already has a company",
	http.StatusConflict,
)

// ErrProfileAlreadyExists - у пользователя уже есть профиль
var ErrProfileAlreadyExists = New(
	CodeAlreadyExists,
	"profile",
	"User already has a profile",
	http.StatusConflict,
)

// ErrAlreadyApplied - пользователь уже откликался на эту вакансию
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// ErrInvalidApplicationStatus - статус вне множества {pending, accepted, rejected}
var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid status",
	http.StatusBadRequest,
)
