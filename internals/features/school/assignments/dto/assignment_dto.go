package dto

import (
	"github.com/google/uuid"

	assignModel "schoolku_backend/internals/features/school/assignments/model"
)

// Assignment records are immutable bindings: they are created and deleted,
// never edited in place.

type GroupCoordinatorRequest struct {
	SchoolID      uuid.UUID `json:"school_id" validate:"required"`
	GroupID       uuid.UUID `json:"group_id" validate:"required"`
	CoordinatorID uuid.UUID `json:"coordinator_id" validate:"required"`
}

func (r GroupCoordinatorRequest) ToModel() assignModel.GroupCoordinatorModel {
	return assignModel.GroupCoordinatorModel{
		GroupCoordinatorSchoolID:      r.SchoolID,
		GroupCoordinatorGroupID:       r.GroupID,
		GroupCoordinatorCoordinatorID: r.CoordinatorID,
	}
}

type TeacherCoordinatorRequest struct {
	SchoolID      uuid.UUID `json:"school_id" validate:"required"`
	TeacherID     uuid.UUID `json:"teacher_id" validate:"required"`
	CoordinatorID uuid.UUID `json:"coordinator_id" validate:"required"`
}

func (r TeacherCoordinatorRequest) ToModel() assignModel.TeacherCoordinatorModel {
	return assignModel.TeacherCoordinatorModel{
		TeacherCoordinatorSchoolID:      r.SchoolID,
		TeacherCoordinatorTeacherID:     r.TeacherID,
		TeacherCoordinatorCoordinatorID: r.CoordinatorID,
	}
}

type TeacherFieldRequest struct {
	SchoolID  uuid.UUID `json:"school_id" validate:"required"`
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	FieldID   uuid.UUID `json:"field_id" validate:"required"`
}

func (r TeacherFieldRequest) ToModel() assignModel.TeacherFieldModel {
	return assignModel.TeacherFieldModel{
		TeacherFieldSchoolID:  r.SchoolID,
		TeacherFieldTeacherID: r.TeacherID,
		TeacherFieldFieldID:   r.FieldID,
	}
}
