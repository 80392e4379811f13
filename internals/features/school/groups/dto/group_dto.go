package dto

import (
	"strings"

	"github.com/google/uuid"

	groupModel "schoolku_backend/internals/features/school/groups/model"
)

type GroupRequest struct {
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	LevelID  uuid.UUID `json:"level_id" validate:"required"`
	Name     string    `json:"group_name" validate:"required,min=1,max=120"`
	Capacity *int      `json:"group_capacity" validate:"omitempty,gte=0"`
}

func (r *GroupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r GroupRequest) ToModel() groupModel.GroupModel {
	m := groupModel.GroupModel{
		GroupSchoolID: r.SchoolID,
		GroupLevelID:  r.LevelID,
		GroupName:     r.Name,
	}
	if r.Capacity != nil {
		m.GroupCapacity = *r.Capacity
	}
	return m
}
