package dto

import (
	"strings"

	"github.com/google/uuid"

	fieldModel "schoolku_backend/internals/features/school/fields/model"
)

type FieldRequest struct {
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	Name     string    `json:"field_name" validate:"required,min=1,max=120"`
	Code     string    `json:"field_code" validate:"required,min=1,max=40"`
}

func (r *FieldRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
}

func (r FieldRequest) ToModel() fieldModel.FieldModel {
	return fieldModel.FieldModel{
		FieldSchoolID: r.SchoolID,
		FieldName:     r.Name,
		FieldCode:     r.Code,
	}
}
