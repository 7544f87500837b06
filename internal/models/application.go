package models

type Application struct {
	BaseModel
	Status ApplicationStatus `gorm:"type:varchar(20);default:'pending';not null" json:"status"`
	UserID uint              `gorm:"not null;index;uniqueIndex:idx_app_user_job" json:"userId"`
	JobID  uint              `gorm:"not null;index;uniqueIndex:idx_app_user_job" json:"jobId"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
