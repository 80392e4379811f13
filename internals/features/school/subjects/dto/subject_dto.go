package dto

import (
	"strings"

	"github.com/google/uuid"

	subjectModel "schoolku_backend/internals/features/school/subjects/model"
)

type SubjectRequest struct {
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	LevelID  uuid.UUID `json:"level_id" validate:"required"`
	FieldID  uuid.UUID `json:"field_id" validate:"required"`
	Name     string    `json:"subject_name" validate:"required,min=1,max=120"`
	Code     string    `json:"subject_code" validate:"required,min=1,max=40"`
}

func (r *SubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
}

func (r SubjectRequest) ToModel() subjectModel.SubjectModel {
	return subjectModel.SubjectModel{
		SubjectSchoolID: r.SchoolID,
		SubjectLevelID:  r.LevelID,
		SubjectFieldID:  r.FieldID,
		SubjectName:     r.Name,
		SubjectCode:     r.Code,
	}
}
