package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LevelModel struct {
	LevelID       uuid.UUID `gorm:"column:level_id;type:uuid;default:gen_random_uuid();primaryKey" json:"level_id"`
	LevelSchoolID uuid.UUID `gorm:"column:level_school_id;type:uuid;not null;index" json:"level_school_id"`

	LevelName string `gorm:"column:level_name;type:varchar(120);not null" json:"level_name"`
	LevelCode string `gorm:"column:level_code;type:varchar(40);not null" json:"level_code"`

	LevelCreatedAt time.Time      `gorm:"column:level_created_at;not null;autoCreateTime" json:"level_created_at"`
	LevelUpdatedAt time.Time      `gorm:"column:level_updated_at;not null;autoUpdateTime" json:"level_updated_at"`
	LevelDeletedAt gorm.DeletedAt `gorm:"column:level_deleted_at;index" json:"level_deleted_at,omitempty"`
}

func (LevelModel) TableName() string { return "levels" }
