package models

type UserRole string
type ApplicationStatus string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleCompany UserRole = "company"
	UserRoleUser    UserRole = "user"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ValidApplicationStatus проверяет значение против множества статусов
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}
