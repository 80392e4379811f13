package dto

import (
	"strings"

	"github.com/google/uuid"

	teacherModel "schoolku_backend/internals/features/school/teachers/model"
)

type TeacherRequest struct {
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	Name     string    `json:"teacher_name" validate:"required,min=1,max=120"`
	Email    string    `json:"teacher_email" validate:"required,email,max=160"`
}

func (r *TeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r TeacherRequest) ToModel() teacherModel.TeacherModel {
	return teacherModel.TeacherModel{
		TeacherSchoolID: r.SchoolID,
		TeacherName:     r.Name,
		TeacherEmail:    r.Email,
	}
}
