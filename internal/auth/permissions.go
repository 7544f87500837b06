package auth

// Principal - аутентифицированный актор запроса (из claims токена)
type Principal struct {
	UserID uint
	Email  string
	Role   string
}

// Роли системы
const (
	RoleAdmin   = "admin"
	RoleCompany = "company"
	RoleUser    = "user"
)

// IsAdmin проверяет является ли пользователь администратором
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// HasRole проверяет входит ли роль принципала в allow-list операции
func (p Principal) HasRole(roles ...string) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// ValidRole проверяет валидность роли
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCompany, RoleUser:
		return true
	default:
		return false
	}
}
