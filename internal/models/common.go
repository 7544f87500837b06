package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StringList сериализует []string в JSONB колонку
func StringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

// DecodeStringList читает JSONB колонку обратно в []string
func DecodeStringList(raw datatypes.JSON) []string {
	var values []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &values)
	}
	return values
}
