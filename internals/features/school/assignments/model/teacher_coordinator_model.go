package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherCoordinatorModel binds one teacher to its coordinating user.
type TeacherCoordinatorModel struct {
	TeacherCoordinatorID            uuid.UUID `gorm:"column:teacher_coordinator_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_coordinator_id"`
	TeacherCoordinatorSchoolID      uuid.UUID `gorm:"column:teacher_coordinator_school_id;type:uuid;not null;index" json:"teacher_coordinator_school_id"`
	TeacherCoordinatorTeacherID     uuid.UUID `gorm:"column:teacher_coordinator_teacher_id;type:uuid;not null;index" json:"teacher_coordinator_teacher_id"`
	TeacherCoordinatorCoordinatorID uuid.UUID `gorm:"column:teacher_coordinator_coordinator_id;type:uuid;not null;index" json:"teacher_coordinator_coordinator_id"`

	TeacherCoordinatorCreatedAt time.Time      `gorm:"column:teacher_coordinator_created_at;not null;autoCreateTime" json:"teacher_coordinator_created_at"`
	TeacherCoordinatorUpdatedAt time.Time      `gorm:"column:teacher_coordinator_updated_at;not null;autoUpdateTime" json:"teacher_coordinator_updated_at"`
	TeacherCoordinatorDeletedAt gorm.DeletedAt `gorm:"column:teacher_coordinator_deleted_at;index" json:"teacher_coordinator_deleted_at,omitempty"`
}

func (TeacherCoordinatorModel) TableName() string { return "teacher_coordinators" }
