package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupModel is a cohort of students inside one level.
type GroupModel struct {
	GroupID       uuid.UUID `gorm:"column:group_id;type:uuid;default:gen_random_uuid();primaryKey" json:"group_id"`
	GroupSchoolID uuid.UUID `gorm:"column:group_school_id;type:uuid;not null;index" json:"group_school_id"`
	GroupLevelID  uuid.UUID `gorm:"column:group_level_id;type:uuid;not null;index" json:"group_level_id"`

	GroupName     string `gorm:"column:group_name;type:varchar(120);not null" json:"group_name"`
	GroupCapacity int    `gorm:"column:group_capacity;not null;default:0" json:"group_capacity"`

	GroupCreatedAt time.Time      `gorm:"column:group_created_at;not null;autoCreateTime" json:"group_created_at"`
	GroupUpdatedAt time.Time      `gorm:"column:group_updated_at;not null;autoUpdateTime" json:"group_updated_at"`
	GroupDeletedAt gorm.DeletedAt `gorm:"column:group_deleted_at;index" json:"group_deleted_at,omitempty"`
}

func (GroupModel) TableName() string { return "groups" }
