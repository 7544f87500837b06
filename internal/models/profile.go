package models

import "gorm.io/datatypes"

type Profile struct {
	BaseModel
	Bio       string         `json:"bio,omitempty"`
	Skills    datatypes.JSON `gorm:"type:jsonb;not null" json:"skills"`
	ResumeURL string         `json:"resumeUrl,omitempty"`

	// Один пользователь - один профиль
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// GetSkills возвращает список навыков как []string
func (p *Profile) GetSkills() []string {
	return DecodeStringList(p.Skills)
}
