package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionModel is a scheduled class occurrence binding a group, a teacher
// (through its coordinator and field assignments), a subject and a time slot.
// Start time is minutes since midnight; slots are opaque numbers — nothing
// checks two sessions for the same teacher or group against each other.
type SessionModel struct {
	SessionID       uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_id"`
	SessionSchoolID uuid.UUID `gorm:"column:session_school_id;type:uuid;not null;index" json:"session_school_id"`
	SessionLevelID  uuid.UUID `gorm:"column:session_level_id;type:uuid;not null" json:"session_level_id"`
	SessionGroupID  uuid.UUID `gorm:"column:session_group_id;type:uuid;not null;index" json:"session_group_id"`

	SessionGroupCoordinatorID   uuid.UUID `gorm:"column:session_group_coordinator_id;type:uuid;not null" json:"session_group_coordinator_id"`
	SessionTeacherCoordinatorID uuid.UUID `gorm:"column:session_teacher_coordinator_id;type:uuid;not null" json:"session_teacher_coordinator_id"`
	SessionTeacherFieldID       uuid.UUID `gorm:"column:session_teacher_field_id;type:uuid;not null" json:"session_teacher_field_id"`
	SessionSubjectID            uuid.UUID `gorm:"column:session_subject_id;type:uuid;not null" json:"session_subject_id"`

	SessionStartTime           int `gorm:"column:session_start_time;not null" json:"session_start_time"`
	SessionGroupScheduleSlot   int `gorm:"column:session_group_schedule_slot;not null" json:"session_group_schedule_slot"`
	SessionTeacherScheduleSlot int `gorm:"column:session_teacher_schedule_slot;not null" json:"session_teacher_schedule_slot"`

	SessionCreatedAt time.Time      `gorm:"column:session_created_at;not null;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time      `gorm:"column:session_updated_at;not null;autoUpdateTime" json:"session_updated_at"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"session_deleted_at,omitempty"`
}

func (SessionModel) TableName() string { return "sessions" }
