package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionModel "schoolku_backend/internals/features/school/sessions/model"
)

// SessionStore is the write/read surface of the session command handler.
// Update and Delete report how many rows they touched so the handler can tell
// a storage-level not-found apart from a relational violation.
type SessionStore interface {
	Insert(ctx context.Context, m *sessionModel.SessionModel) error
	Update(ctx context.Context, id, schoolID uuid.UUID, m *sessionModel.SessionModel) (int64, error)
	Delete(ctx context.Context, id, schoolID uuid.UUID) (int64, error)
	FindByID(ctx context.Context, id, schoolID uuid.UUID) (*sessionModel.SessionModel, error)
	ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]sessionModel.SessionModel, error)
}

type gormSessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) SessionStore {
	return &gormSessionStore{db: db}
}

func (s *gormSessionStore) Insert(ctx context.Context, m *sessionModel.SessionModel) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *gormSessionStore) Update(ctx context.Context, id, schoolID uuid.UUID, m *sessionModel.SessionModel) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&sessionModel.SessionModel{}).
		Where("session_id = ? AND session_school_id = ?", id, schoolID).
		Updates(map[string]interface{}{
			"session_level_id":               m.SessionLevelID,
			"session_group_id":               m.SessionGroupID,
			"session_group_coordinator_id":   m.SessionGroupCoordinatorID,
			"session_teacher_coordinator_id": m.SessionTeacherCoordinatorID,
			"session_teacher_field_id":       m.SessionTeacherFieldID,
			"session_subject_id":             m.SessionSubjectID,
			"session_start_time":             m.SessionStartTime,
			"session_group_schedule_slot":    m.SessionGroupScheduleSlot,
			"session_teacher_schedule_slot":  m.SessionTeacherScheduleSlot,
		})
	return res.RowsAffected, res.Error
}

func (s *gormSessionStore) Delete(ctx context.Context, id, schoolID uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("session_id = ? AND session_school_id = ?", id, schoolID).
		Delete(&sessionModel.SessionModel{})
	return res.RowsAffected, res.Error
}

func (s *gormSessionStore) FindByID(ctx context.Context, id, schoolID uuid.UUID) (*sessionModel.SessionModel, error) {
	var m sessionModel.SessionModel
	if err := s.db.WithContext(ctx).
		Where("session_id = ? AND session_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *gormSessionStore) ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]sessionModel.SessionModel, error) {
	var out []sessionModel.SessionModel
	if err := s.db.WithContext(ctx).
		Where("session_school_id = ?", schoolID).
		Order("session_created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
