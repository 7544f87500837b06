package models

import "time"

type User struct {
	BaseModel
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	DateOfBirth  time.Time `json:"dob"`
	Role         UserRole  `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	Company *Company `gorm:"foreignKey:CreatedBy" json:"company,omitempty"`
	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

// Fullname - имя для claims токена и писем
func (u *User) Fullname() string {
	return u.FirstName + " " + u.LastName
}
