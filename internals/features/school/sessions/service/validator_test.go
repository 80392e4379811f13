package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	constants "schoolku_backend/internals/constants"
	assignModel "schoolku_backend/internals/features/school/assignments/model"
	groupModel "schoolku_backend/internals/features/school/groups/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	userModel "schoolku_backend/internals/features/school/users/model"
)

// fakeGraph is an in-memory EntityGraph that records every fetch, so tests
// can assert which lookups a failing chain did and did not issue.
type fakeGraph struct {
	groupCoordinators   map[uuid.UUID]*assignModel.GroupCoordinatorModel
	users               map[uuid.UUID]*userModel.UserModel
	groups              map[uuid.UUID]*groupModel.GroupModel
	teacherCoordinators map[uuid.UUID]*assignModel.TeacherCoordinatorModel
	teacherFields       map[uuid.UUID]*assignModel.TeacherFieldModel
	subjects            map[uuid.UUID]*subjectModel.SubjectModel

	calls []string
	err   error
}

func (f *fakeGraph) GroupCoordinatorWithUser(_ context.Context, id uuid.UUID) (*assignModel.GroupCoordinatorModel, *userModel.UserModel, error) {
	f.calls = append(f.calls, "group_coordinator")
	if f.err != nil {
		return nil, nil, f.err
	}
	gc := f.groupCoordinators[id]
	if gc == nil {
		return nil, nil, nil
	}
	return gc, f.users[gc.GroupCoordinatorCoordinatorID], nil
}

func (f *fakeGraph) GroupByID(_ context.Context, id uuid.UUID) (*groupModel.GroupModel, error) {
	f.calls = append(f.calls, "group")
	return f.groups[id], nil
}

func (f *fakeGraph) TeacherCoordinatorByID(_ context.Context, id uuid.UUID) (*assignModel.TeacherCoordinatorModel, error) {
	f.calls = append(f.calls, "teacher_coordinator")
	return f.teacherCoordinators[id], nil
}

func (f *fakeGraph) TeacherFieldByID(_ context.Context, id uuid.UUID) (*assignModel.TeacherFieldModel, error) {
	f.calls = append(f.calls, "teacher_field")
	return f.teacherFields[id], nil
}

func (f *fakeGraph) SubjectByID(_ context.Context, id uuid.UUID) (*subjectModel.SubjectModel, error) {
	f.calls = append(f.calls, "subject")
	return f.subjects[id], nil
}

func (f *fakeGraph) called(name string) bool {
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

// newCoherentGraph builds the fully consistent fixture: school S, level L,
// group G in L, active coordinator U, GC binding U to G, teacher T, TC
// binding U to T, field F, TF binding T to F, subject SU in L and F.
func newCoherentGraph() (*fakeGraph, Assignment) {
	var (
		school  = uuid.New()
		level   = uuid.New()
		group   = uuid.New()
		user    = uuid.New()
		gcID    = uuid.New()
		teacher = uuid.New()
		tcID    = uuid.New()
		field   = uuid.New()
		tfID    = uuid.New()
		subject = uuid.New()
	)

	g := &fakeGraph{
		groupCoordinators: map[uuid.UUID]*assignModel.GroupCoordinatorModel{
			gcID: {
				GroupCoordinatorID:            gcID,
				GroupCoordinatorSchoolID:      school,
				GroupCoordinatorGroupID:       group,
				GroupCoordinatorCoordinatorID: user,
			},
		},
		users: map[uuid.UUID]*userModel.UserModel{
			user: {
				UserID:       user,
				UserSchoolID: school,
				UserRole:     constants.RoleCoordinator,
				UserStatus:   constants.StatusActive,
			},
		},
		groups: map[uuid.UUID]*groupModel.GroupModel{
			group: {
				GroupID:       group,
				GroupSchoolID: school,
				GroupLevelID:  level,
			},
		},
		teacherCoordinators: map[uuid.UUID]*assignModel.TeacherCoordinatorModel{
			tcID: {
				TeacherCoordinatorID:            tcID,
				TeacherCoordinatorSchoolID:      school,
				TeacherCoordinatorTeacherID:     teacher,
				TeacherCoordinatorCoordinatorID: user,
			},
		},
		teacherFields: map[uuid.UUID]*assignModel.TeacherFieldModel{
			tfID: {
				TeacherFieldID:        tfID,
				TeacherFieldSchoolID:  school,
				TeacherFieldTeacherID: teacher,
				TeacherFieldFieldID:   field,
			},
		},
		subjects: map[uuid.UUID]*subjectModel.SubjectModel{
			subject: {
				SubjectID:       subject,
				SubjectSchoolID: school,
				SubjectLevelID:  level,
				SubjectFieldID:  field,
			},
		},
	}

	in := Assignment{
		SchoolID:             school,
		LevelID:              level,
		GroupID:              group,
		GroupCoordinatorID:   gcID,
		TeacherCoordinatorID: tcID,
		TeacherFieldID:       tfID,
		SubjectID:            subject,
		StartTime:            420,
	}
	return g, in
}

func validateOnce(t *testing.T, g *fakeGraph, in Assignment) *Violation {
	t.Helper()
	v, err := NewAssignmentValidator(g).Validate(context.Background(), in)
	require.NoError(t, err)
	return v
}

func TestValidateCoherentGraph(t *testing.T) {
	g, in := newCoherentGraph()
	v := validateOnce(t, g, in)
	assert.Nil(t, v)
}

func TestValidateStartTimeBoundary(t *testing.T) {
	for _, tc := range []struct {
		startTime int
		ok        bool
	}{
		{0, true},
		{420, true},
		{1380, true},
		{1381, false},
		{1440, false},
	} {
		g, in := newCoherentGraph()
		in.StartTime = tc.startTime
		v := validateOnce(t, g, in)
		if tc.ok {
			assert.Nilf(t, v, "startTime=%d should pass", tc.startTime)
		} else {
			require.NotNilf(t, v, "startTime=%d should fail", tc.startTime)
			assert.Equal(t, CategoryInvalidTimeRange, v.Category)
			assert.Equal(t, MsgStartTimeTooLate, v.Message)
			// the time bound is checked before anything is fetched
			assert.Empty(t, g.calls)
		}
	}
}

func TestValidateGroupCoordinator(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		g, in := newCoherentGraph()
		in.GroupCoordinatorID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryNotFound, v.Category)
		assert.Equal(t, MsgGroupCoordinatorMissing, v.Message)
		assert.Equal(t, []string{"group_coordinator"}, g.calls)
	})

	t.Run("wrong school", func(t *testing.T) {
		g, in := newCoherentGraph()
		g.groupCoordinators[in.GroupCoordinatorID].GroupCoordinatorSchoolID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategorySchoolMismatch, v.Category)
		assert.Equal(t, MsgGroupCoordinatorSchool, v.Message)
		assert.False(t, g.called("group"))
	})
}

func TestValidateGroupLevel(t *testing.T) {
	t.Run("wrong level", func(t *testing.T) {
		g, in := newCoherentGraph()
		g.groups[in.GroupID].GroupLevelID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryRelationMismatch, v.Category)
		assert.Equal(t, MsgGroupLevelMismatch, v.Message)
		assert.False(t, g.called("teacher_coordinator"))
	})

	t.Run("missing group", func(t *testing.T) {
		g, in := newCoherentGraph()
		delete(g.groups, in.GroupID)
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryRelationMismatch, v.Category)
		assert.Equal(t, MsgGroupLevelMismatch, v.Message)
	})
}

func TestValidateCoordinatorGroupBinding(t *testing.T) {
	g, in := newCoherentGraph()
	other := uuid.New()
	g.groups[other] = &groupModel.GroupModel{
		GroupID:       other,
		GroupSchoolID: in.SchoolID,
		GroupLevelID:  in.LevelID,
	}
	g.groupCoordinators[in.GroupCoordinatorID].GroupCoordinatorGroupID = other
	v := validateOnce(t, g, in)
	require.NotNil(t, v)
	assert.Equal(t, CategoryRelationMismatch, v.Category)
	assert.Equal(t, MsgGroupNotCoordinators, v.Message)
}

func TestValidateCoordinatorUser(t *testing.T) {
	t.Run("wrong role", func(t *testing.T) {
		g, in := newCoherentGraph()
		gc := g.groupCoordinators[in.GroupCoordinatorID]
		g.users[gc.GroupCoordinatorCoordinatorID].UserRole = constants.RoleStaff
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryInvalidRole, v.Category)
		assert.Equal(t, MsgCoordinatorNotRole, v.Message)
	})

	t.Run("dangling user", func(t *testing.T) {
		g, in := newCoherentGraph()
		gc := g.groupCoordinators[in.GroupCoordinatorID]
		delete(g.users, gc.GroupCoordinatorCoordinatorID)
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryInvalidRole, v.Category)
	})

	t.Run("not active", func(t *testing.T) {
		g, in := newCoherentGraph()
		gc := g.groupCoordinators[in.GroupCoordinatorID]
		g.users[gc.GroupCoordinatorCoordinatorID].UserStatus = constants.StatusSuspended
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryInvalidStatus, v.Category)
		assert.Equal(t, MsgCoordinatorNotActive, v.Message)
		assert.False(t, g.called("teacher_coordinator"))
	})
}

func TestValidateTeacherCoordinator(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		g, in := newCoherentGraph()
		in.TeacherCoordinatorID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryNotFound, v.Category)
		assert.Equal(t, MsgTeacherCoordinatorMissing, v.Message)
		assert.False(t, g.called("teacher_field"))
		assert.False(t, g.called("subject"))
	})

	t.Run("wrong school", func(t *testing.T) {
		g, in := newCoherentGraph()
		g.teacherCoordinators[in.TeacherCoordinatorID].TeacherCoordinatorSchoolID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategorySchoolMismatch, v.Category)
		assert.Equal(t, MsgTeacherCoordinatorSchool, v.Message)
	})

	t.Run("coordinator not shared", func(t *testing.T) {
		g, in := newCoherentGraph()
		g.teacherCoordinators[in.TeacherCoordinatorID].TeacherCoordinatorCoordinatorID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryRelationMismatch, v.Category)
		assert.Equal(t, MsgCoordinatorNotShared, v.Message)
	})
}

func TestValidateTeacherField(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		g, in := newCoherentGraph()
		in.TeacherFieldID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryNotFound, v.Category)
		assert.Equal(t, MsgTeacherFieldMissing, v.Message)
		assert.False(t, g.called("subject"))
	})

	t.Run("wrong school", func(t *testing.T) {
		g, in := newCoherentGraph()
		g.teacherFields[in.TeacherFieldID].TeacherFieldSchoolID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategorySchoolMismatch, v.Category)
		assert.Equal(t, MsgTeacherFieldSchool, v.Message)
	})

	t.Run("different teacher", func(t *testing.T) {
		g, in := newCoherentGraph()
		g.teacherFields[in.TeacherFieldID].TeacherFieldTeacherID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryRelationMismatch, v.Category)
		assert.Equal(t, MsgTeacherNotInField, v.Message)
		assert.False(t, g.called("subject"))
	})
}

func TestValidateSubject(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		g, in := newCoherentGraph()
		in.SubjectID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryNotFound, v.Category)
		assert.Equal(t, MsgSubjectMissing, v.Message)
	})

	t.Run("wrong school", func(t *testing.T) {
		g, in := newCoherentGraph()
		g.subjects[in.SubjectID].SubjectSchoolID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategorySchoolMismatch, v.Category)
		assert.Equal(t, MsgSubjectSchool, v.Message)
	})

	t.Run("wrong level", func(t *testing.T) {
		g, in := newCoherentGraph()
		g.subjects[in.SubjectID].SubjectLevelID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryRelationMismatch, v.Category)
		assert.Equal(t, MsgSubjectLevelMismatch, v.Message)
	})

	t.Run("field differs from teacher's", func(t *testing.T) {
		g, in := newCoherentGraph()
		g.subjects[in.SubjectID].SubjectFieldID = uuid.New()
		v := validateOnce(t, g, in)
		require.NotNil(t, v)
		assert.Equal(t, CategoryRelationMismatch, v.Category)
		assert.Equal(t, MsgSubjectFieldMismatch, v.Message)
	})
}

// Repeating the same invalid payload against unchanged data must yield the
// identical violation every time.
func TestValidateIdempotent(t *testing.T) {
	g, in := newCoherentGraph()
	g.teacherCoordinators[in.TeacherCoordinatorID].TeacherCoordinatorCoordinatorID = uuid.New()

	first := validateOnce(t, g, in)
	require.NotNil(t, first)
	for i := 0; i < 3; i++ {
		again := validateOnce(t, g, in)
		require.NotNil(t, again)
		assert.Equal(t, first.Category, again.Category)
		assert.Equal(t, first.Message, again.Message)
	}
}

func TestValidateFetchOrder(t *testing.T) {
	g, in := newCoherentGraph()
	v := validateOnce(t, g, in)
	require.Nil(t, v)
	assert.Equal(t, []string{"group_coordinator", "group", "teacher_coordinator", "teacher_field", "subject"}, g.calls)
}

// A storage fault surfaces as an error, never as a violation.
func TestValidateStoreFault(t *testing.T) {
	g, in := newCoherentGraph()
	g.err = errors.New("connection reset")

	v, err := NewAssignmentValidator(g).Validate(context.Background(), in)
	assert.Error(t, err)
	assert.Nil(t, v)
}
