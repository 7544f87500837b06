package validator

import (
	"log"
	"strings"

	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Приложение не должно запускаться с неполным набором правил
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': роль, допустимая при регистрации (admin не принимается)
	mustRegister("is-user-role", validateSignupRole)

	// 'is-application-status': статус отклика
	mustRegister("is-application-status", validateApplicationStatus)

	// 'notblank': строка не пуста после обрезки пробелов
	mustRegister("notblank", validateNotBlank)
}

func validateSignupRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Пустые значения обрабатывает 'required'
	}
	switch models.UserRole(value) {
	case models.UserRoleUser, models.UserRoleCompany:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidApplicationStatus(models.ApplicationStatus(value))
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
