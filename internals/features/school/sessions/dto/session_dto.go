package dto

import (
	"github.com/google/uuid"

	sessionModel "schoolku_backend/internals/features/school/sessions/model"
	"schoolku_backend/internals/features/school/sessions/service"
)

// SessionRequest is the create/update payload. The numeric fields are
// pointers so the field-rule pipeline can tell "absent" from zero.
type SessionRequest struct {
	SchoolID             uuid.UUID `json:"school_id" validate:"required"`
	LevelID              uuid.UUID `json:"level_id" validate:"required"`
	GroupID              uuid.UUID `json:"group_id" validate:"required"`
	GroupCoordinatorID   uuid.UUID `json:"groupCoordinator_id" validate:"required"`
	TeacherCoordinatorID uuid.UUID `json:"teacherCoordinator_id" validate:"required"`
	TeacherFieldID       uuid.UUID `json:"teacherField_id" validate:"required"`
	SubjectID            uuid.UUID `json:"subject_id" validate:"required"`

	StartTime           *int `json:"startTime" validate:"required,gte=0"`
	GroupScheduleSlot   *int `json:"groupScheduleSlot" validate:"required,gte=0"`
	TeacherScheduleSlot *int `json:"teacherScheduleSlot" validate:"required,gte=0"`
}

func (r SessionRequest) ToAssignment() service.Assignment {
	return service.Assignment{
		SchoolID:             r.SchoolID,
		LevelID:              r.LevelID,
		GroupID:              r.GroupID,
		GroupCoordinatorID:   r.GroupCoordinatorID,
		TeacherCoordinatorID: r.TeacherCoordinatorID,
		TeacherFieldID:       r.TeacherFieldID,
		SubjectID:            r.SubjectID,
		StartTime:            *r.StartTime,
	}
}

func (r SessionRequest) ToModel() sessionModel.SessionModel {
	return sessionModel.SessionModel{
		SessionSchoolID:             r.SchoolID,
		SessionLevelID:              r.LevelID,
		SessionGroupID:              r.GroupID,
		SessionGroupCoordinatorID:   r.GroupCoordinatorID,
		SessionTeacherCoordinatorID: r.TeacherCoordinatorID,
		SessionTeacherFieldID:       r.TeacherFieldID,
		SessionSubjectID:            r.SubjectID,
		SessionStartTime:            *r.StartTime,
		SessionGroupScheduleSlot:    *r.GroupScheduleSlot,
		SessionTeacherScheduleSlot:  *r.TeacherScheduleSlot,
	}
}

// SessionResponse echoes the submitted payload field for field, plus the id.
type SessionResponse struct {
	SessionID            uuid.UUID `json:"session_id"`
	SchoolID             uuid.UUID `json:"school_id"`
	LevelID              uuid.UUID `json:"level_id"`
	GroupID              uuid.UUID `json:"group_id"`
	GroupCoordinatorID   uuid.UUID `json:"groupCoordinator_id"`
	TeacherCoordinatorID uuid.UUID `json:"teacherCoordinator_id"`
	TeacherFieldID       uuid.UUID `json:"teacherField_id"`
	SubjectID            uuid.UUID `json:"subject_id"`
	StartTime            int       `json:"startTime"`
	GroupScheduleSlot    int       `json:"groupScheduleSlot"`
	TeacherScheduleSlot  int       `json:"teacherScheduleSlot"`
}

func FromSessionModel(m sessionModel.SessionModel) SessionResponse {
	return SessionResponse{
		SessionID:            m.SessionID,
		SchoolID:             m.SessionSchoolID,
		LevelID:              m.SessionLevelID,
		GroupID:              m.SessionGroupID,
		GroupCoordinatorID:   m.SessionGroupCoordinatorID,
		TeacherCoordinatorID: m.SessionTeacherCoordinatorID,
		TeacherFieldID:       m.SessionTeacherFieldID,
		SubjectID:            m.SessionSubjectID,
		StartTime:            m.SessionStartTime,
		GroupScheduleSlot:    m.SessionGroupScheduleSlot,
		TeacherScheduleSlot:  m.SessionTeacherScheduleSlot,
	}
}

func FromSessionModels(ms []sessionModel.SessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromSessionModel(m))
	}
	return out
}
