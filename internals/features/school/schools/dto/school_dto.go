package dto

import (
	"strings"

	"gorm.io/datatypes"

	schoolModel "schoolku_backend/internals/features/school/schools/model"
)

type SchoolRequest struct {
	Name     string                 `json:"school_name" validate:"required,min=1,max=120"`
	Code     string                 `json:"school_code" validate:"required,min=1,max=40"`
	Settings map[string]interface{} `json:"school_settings"`
	IsActive *bool                  `json:"school_is_active"`
}

func (r *SchoolRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
}

func (r SchoolRequest) ToModel() schoolModel.SchoolModel {
	m := schoolModel.SchoolModel{
		SchoolName:     r.Name,
		SchoolCode:     r.Code,
		SchoolIsActive: true,
	}
	if r.Settings != nil {
		m.SchoolSettings = datatypes.JSONMap(r.Settings)
	}
	if r.IsActive != nil {
		m.SchoolIsActive = *r.IsActive
	}
	return m
}

// ApplyTo copies the request onto an existing record for update.
func (r SchoolRequest) ApplyTo(m *schoolModel.SchoolModel) {
	m.SchoolName = r.Name
	m.SchoolCode = r.Code
	if r.Settings != nil {
		m.SchoolSettings = datatypes.JSONMap(r.Settings)
	}
	if r.IsActive != nil {
		m.SchoolIsActive = *r.IsActive
	}
}
