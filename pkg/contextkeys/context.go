package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// UserIDContextKey - ключ, по которому хранится ID аутентифицированного пользователя
	UserIDContextKey = contextKey("userID")

	// RoleContextKey - ключ, по которому хранится роль аутентифицированного пользователя
	RoleContextKey = contextKey("role")

	// EmailContextKey - ключ, по которому хранится email аутентифицированного пользователя
	EmailContextKey = contextKey("email")
)
