package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is a back-office user. Coordinators referenced by session
// assignments must have the coordinator role and an active status.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserSchoolID uuid.UUID `gorm:"column:user_school_id;type:uuid;not null;index" json:"user_school_id"`

	UserName     string `gorm:"column:user_name;type:varchar(120);not null" json:"user_name"`
	UserEmail    string `gorm:"column:user_email;type:varchar(160);not null;uniqueIndex" json:"user_email"`
	UserPassword string `gorm:"column:user_password;type:varchar(100);not null" json:"-"`

	UserRole   string `gorm:"column:user_role;type:varchar(20);not null;default:'staff'" json:"user_role"`
	UserStatus string `gorm:"column:user_status;type:varchar(20);not null;default:'active'" json:"user_status"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
