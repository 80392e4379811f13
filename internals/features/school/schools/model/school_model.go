package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SchoolModel is the root tenant; every other entity carries a back-reference
// to one of these.
type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`

	SchoolName string `gorm:"column:school_name;type:varchar(120);not null" json:"school_name"`
	SchoolCode string `gorm:"column:school_code;type:varchar(40);not null" json:"school_code"`

	// free-form per-school settings (timezone, term dates, ...)
	SchoolSettings datatypes.JSONMap `gorm:"column:school_settings;type:jsonb" json:"school_settings,omitempty"`

	SchoolIsActive  bool           `gorm:"column:school_is_active;not null;default:true" json:"school_is_active"`
	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;not null;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;not null;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
