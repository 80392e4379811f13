package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldModel is a subject area ("Mathematics"), referenced by both subjects
// and teacher-field assignments.
type FieldModel struct {
	FieldID       uuid.UUID `gorm:"column:field_id;type:uuid;default:gen_random_uuid();primaryKey" json:"field_id"`
	FieldSchoolID uuid.UUID `gorm:"column:field_school_id;type:uuid;not null;index" json:"field_school_id"`

	FieldName string `gorm:"column:field_name;type:varchar(120);not null" json:"field_name"`
	FieldCode string `gorm:"column:field_code;type:varchar(40);not null" json:"field_code"`

	FieldCreatedAt time.Time      `gorm:"column:field_created_at;not null;autoCreateTime" json:"field_created_at"`
	FieldUpdatedAt time.Time      `gorm:"column:field_updated_at;not null;autoUpdateTime" json:"field_updated_at"`
	FieldDeletedAt gorm.DeletedAt `gorm:"column:field_deleted_at;index" json:"field_deleted_at,omitempty"`
}

func (FieldModel) TableName() string { return "fields" }
