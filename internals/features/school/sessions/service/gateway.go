package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	assignModel "schoolku_backend/internals/features/school/assignments/model"
	groupModel "schoolku_backend/internals/features/school/groups/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	userModel "schoolku_backend/internals/features/school/users/model"
)

// EntityGraph is the narrow read surface the assignment validator walks.
// Absent records come back as nil without an error; an error means the store
// itself failed and is never turned into a violation.
type EntityGraph interface {
	// GroupCoordinatorWithUser also resolves the coordinating user; the user
	// may be nil when the assignment dangles.
	GroupCoordinatorWithUser(ctx context.Context, id uuid.UUID) (*assignModel.GroupCoordinatorModel, *userModel.UserModel, error)
	GroupByID(ctx context.Context, id uuid.UUID) (*groupModel.GroupModel, error)
	TeacherCoordinatorByID(ctx context.Context, id uuid.UUID) (*assignModel.TeacherCoordinatorModel, error)
	TeacherFieldByID(ctx context.Context, id uuid.UUID) (*assignModel.TeacherFieldModel, error)
	SubjectByID(ctx context.Context, id uuid.UUID) (*subjectModel.SubjectModel, error)
}

type gormEntityGraph struct {
	db *gorm.DB
}

func NewEntityGraph(db *gorm.DB) EntityGraph {
	return &gormEntityGraph{db: db}
}

func (g *gormEntityGraph) GroupCoordinatorWithUser(ctx context.Context, id uuid.UUID) (*assignModel.GroupCoordinatorModel, *userModel.UserModel, error) {
	var gc assignModel.GroupCoordinatorModel
	if err := g.db.WithContext(ctx).
		Where("group_coordinator_id = ?", id).
		First(&gc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var u userModel.UserModel
	if err := g.db.WithContext(ctx).
		Where("user_id = ?", gc.GroupCoordinatorCoordinatorID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &gc, nil, nil
		}
		return nil, nil, err
	}
	return &gc, &u, nil
}

func (g *gormEntityGraph) GroupByID(ctx context.Context, id uuid.UUID) (*groupModel.GroupModel, error) {
	var m groupModel.GroupModel
	if err := g.db.WithContext(ctx).
		Where("group_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (g *gormEntityGraph) TeacherCoordinatorByID(ctx context.Context, id uuid.UUID) (*assignModel.TeacherCoordinatorModel, error) {
	var m assignModel.TeacherCoordinatorModel
	if err := g.db.WithContext(ctx).
		Where("teacher_coordinator_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (g *gormEntityGraph) TeacherFieldByID(ctx context.Context, id uuid.UUID) (*assignModel.TeacherFieldModel, error) {
	var m assignModel.TeacherFieldModel
	if err := g.db.WithContext(ctx).
		Where("teacher_field_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (g *gormEntityGraph) SubjectByID(ctx context.Context, id uuid.UUID) (*subjectModel.SubjectModel, error) {
	var m subjectModel.SubjectModel
	if err := g.db.WithContext(ctx).
		Where("subject_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
