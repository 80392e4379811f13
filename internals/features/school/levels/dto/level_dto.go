package dto

import (
	"strings"

	"github.com/google/uuid"

	levelModel "schoolku_backend/internals/features/school/levels/model"
)

type LevelRequest struct {
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	Name     string    `json:"level_name" validate:"required,min=1,max=120"`
	Code     string    `json:"level_code" validate:"required,min=1,max=40"`
}

func (r *LevelRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
}

func (r LevelRequest) ToModel() levelModel.LevelModel {
	return levelModel.LevelModel{
		LevelSchoolID: r.SchoolID,
		LevelName:     r.Name,
		LevelCode:     r.Code,
	}
}
