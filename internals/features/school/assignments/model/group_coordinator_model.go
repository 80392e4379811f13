package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupCoordinatorModel binds one group to its coordinating user.
type GroupCoordinatorModel struct {
	GroupCoordinatorID            uuid.UUID `gorm:"column:group_coordinator_id;type:uuid;default:gen_random_uuid();primaryKey" json:"group_coordinator_id"`
	GroupCoordinatorSchoolID      uuid.UUID `gorm:"column:group_coordinator_school_id;type:uuid;not null;index" json:"group_coordinator_school_id"`
	GroupCoordinatorGroupID       uuid.UUID `gorm:"column:group_coordinator_group_id;type:uuid;not null;index" json:"group_coordinator_group_id"`
	GroupCoordinatorCoordinatorID uuid.UUID `gorm:"column:group_coordinator_coordinator_id;type:uuid;not null;index" json:"group_coordinator_coordinator_id"`

	GroupCoordinatorCreatedAt time.Time      `gorm:"column:group_coordinator_created_at;not null;autoCreateTime" json:"group_coordinator_created_at"`
	GroupCoordinatorUpdatedAt time.Time      `gorm:"column:group_coordinator_updated_at;not null;autoUpdateTime" json:"group_coordinator_updated_at"`
	GroupCoordinatorDeletedAt gorm.DeletedAt `gorm:"column:group_coordinator_deleted_at;index" json:"group_coordinator_deleted_at,omitempty"`
}

func (GroupCoordinatorModel) TableName() string { return "group_coordinators" }
