package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"
)

// AuthMiddleware - middleware проверки JWT.
// Токен принимается из заголовка Authorization (Bearer) или из cookie "token".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			abortWithAppError(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			abortWithAppError(c, apperrors.ErrInvalidToken)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), strconv.FormatUint(uint64(claims.UserID), 10))
		c.Request = c.Request.WithContext(ctx)

		c.Set(string(contextkeys.UserIDContextKey), claims.UserID)
		c.Set(string(contextkeys.EmailContextKey), claims.Email)
		c.Set(string(contextkeys.RoleContextKey), claims.Role)
		c.Next()
	}
}

// RequireRoles пропускает только перечисленные роли
func RequireRoles(roles ...string) gin.HandlerFunc {
	roleSet := make(map[string]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(string(contextkeys.RoleContextKey))
		if role == "" || !roleSet[role] {
			abortWithAppError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}
	return ""
}

func abortWithAppError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPCode, apperrors.ErrorResponse{Error: appErr})
}

// GetPrincipal собирает принципала из контекста запроса.
// Второе значение false, если запрос не прошел AuthMiddleware.
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	userIDVal, exists := c.Get(string(contextkeys.UserIDContextKey))
	if !exists {
		return auth.Principal{}, false
	}
	userID, ok := userIDVal.(uint)
	if !ok {
		return auth.Principal{}, false
	}
	return auth.Principal{
		UserID: userID,
		Email:  c.GetString(string(contextkeys.EmailContextKey)),
		Role:   c.GetString(string(contextkeys.RoleContextKey)),
	}, true
}

// NoRoute - единый 404 для незарегистрированных маршрутов
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Route not found"})
	}
}
