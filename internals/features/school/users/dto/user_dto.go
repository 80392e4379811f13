package dto

import (
	"strings"

	"github.com/google/uuid"

	constants "schoolku_backend/internals/constants"
	userModel "schoolku_backend/internals/features/school/users/model"
)

type UserRequest struct {
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	Name     string    `json:"user_name" validate:"required,min=1,max=120"`
	Email    string    `json:"user_email" validate:"required,email,max=160"`
	Password string    `json:"user_password" validate:"required,min=8,max=72"`
	Role     string    `json:"user_role" validate:"omitempty,oneof=admin coordinator staff"`
	Status   string    `json:"user_status" validate:"omitempty,oneof=active inactive suspended"`
}

func (r *UserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.TrimSpace(r.Role)
	r.Status = strings.TrimSpace(r.Status)
}

// ToModel fills defaults; the password is hashed by the controller, never
// stored as submitted.
func (r UserRequest) ToModel() userModel.UserModel {
	m := userModel.UserModel{
		UserSchoolID: r.SchoolID,
		UserName:     r.Name,
		UserEmail:    r.Email,
		UserRole:     constants.RoleStaff,
		UserStatus:   constants.StatusActive,
	}
	if r.Role != "" {
		m.UserRole = r.Role
	}
	if r.Status != "" {
		m.UserStatus = r.Status
	}
	return m
}
