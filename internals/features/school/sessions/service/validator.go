package service

import (
	"context"

	"github.com/google/uuid"

	constants "schoolku_backend/internals/constants"
	assignModel "schoolku_backend/internals/features/school/assignments/model"
	groupModel "schoolku_backend/internals/features/school/groups/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	userModel "schoolku_backend/internals/features/school/users/model"
)

// Assignment is a proposed session, already past the field-rule pipeline.
// SchoolID is ground truth; everything the assignment references must resolve
// to the same school.
type Assignment struct {
	SchoolID             uuid.UUID
	LevelID              uuid.UUID
	GroupID              uuid.UUID
	GroupCoordinatorID   uuid.UUID
	TeacherCoordinatorID uuid.UUID
	TeacherFieldID       uuid.UUID
	SubjectID            uuid.UUID
	StartTime            int
}

// chainState accumulates what earlier checks fetched, so later checks can
// compare against it without refetching.
type chainState struct {
	graph EntityGraph
	in    Assignment

	groupCoordinator   *assignModel.GroupCoordinatorModel
	coordinator        *userModel.UserModel
	group              *groupModel.GroupModel
	teacherCoordinator *assignModel.TeacherCoordinatorModel
	teacherField       *assignModel.TeacherFieldModel
	subject            *subjectModel.SubjectModel
}

type checkStep func(ctx context.Context, s *chainState) (*Violation, error)

// assignmentChecks is the coherence chain. Order is a contract: evaluation
// stops at the first broken invariant and only that one is reported, so a
// request can never surface two violations, and later entities are never
// fetched once an earlier check fails.
var assignmentChecks = []checkStep{
	checkStartTime,
	fetchGroupCoordinator,
	checkGroupLevel,
	checkCoordinatorGroup,
	checkCoordinatorUser,
	fetchTeacherCoordinator,
	checkSharedCoordinator,
	fetchTeacherField,
	checkFieldTeacher,
	fetchSubject,
	checkSubjectField,
}

// AssignmentValidator decides whether a proposed session is a coherent
// assignment. It is stateless and read-only: any number of validations may
// run concurrently, and no entity is ever mutated.
type AssignmentValidator struct {
	graph EntityGraph
}

func NewAssignmentValidator(graph EntityGraph) *AssignmentValidator {
	return &AssignmentValidator{graph: graph}
}

// Validate returns the first violated invariant, or nil when all hold.
// A non-nil error is a storage fault, never a business outcome.
func (v *AssignmentValidator) Validate(ctx context.Context, in Assignment) (*Violation, error) {
	s := &chainState{graph: v.graph, in: in}
	for _, step := range assignmentChecks {
		viol, err := step(ctx, s)
		if err != nil {
			return nil, err
		}
		if viol != nil {
			return viol, nil
		}
	}
	return nil, nil
}

func checkStartTime(_ context.Context, s *chainState) (*Violation, error) {
	if s.in.StartTime > constants.MaxSessionStartTime {
		return &Violation{CategoryInvalidTimeRange, MsgStartTimeTooLate}, nil
	}
	return nil, nil
}

func fetchGroupCoordinator(ctx context.Context, s *chainState) (*Violation, error) {
	gc, u, err := s.graph.GroupCoordinatorWithUser(ctx, s.in.GroupCoordinatorID)
	if err != nil {
		return nil, err
	}
	if gc == nil {
		return &Violation{CategoryNotFound, MsgGroupCoordinatorMissing}, nil
	}
	if gc.GroupCoordinatorSchoolID != s.in.SchoolID {
		return &Violation{CategorySchoolMismatch, MsgGroupCoordinatorSchool}, nil
	}
	s.groupCoordinator = gc
	s.coordinator = u
	return nil, nil
}

func checkGroupLevel(ctx context.Context, s *chainState) (*Violation, error) {
	g, err := s.graph.GroupByID(ctx, s.in.GroupID)
	if err != nil {
		return nil, err
	}
	// a missing group cannot belong to the declared level
	if g == nil || g.GroupLevelID != s.in.LevelID {
		return &Violation{CategoryRelationMismatch, MsgGroupLevelMismatch}, nil
	}
	s.group = g
	return nil, nil
}

func checkCoordinatorGroup(_ context.Context, s *chainState) (*Violation, error) {
	if s.groupCoordinator.GroupCoordinatorGroupID != s.in.GroupID {
		return &Violation{CategoryRelationMismatch, MsgGroupNotCoordinators}, nil
	}
	return nil, nil
}

func checkCoordinatorUser(_ context.Context, s *chainState) (*Violation, error) {
	if s.coordinator == nil || s.coordinator.UserRole != constants.RoleCoordinator {
		return &Violation{CategoryInvalidRole, MsgCoordinatorNotRole}, nil
	}
	if s.coordinator.UserStatus != constants.StatusActive {
		return &Violation{CategoryInvalidStatus, MsgCoordinatorNotActive}, nil
	}
	return nil, nil
}

func fetchTeacherCoordinator(ctx context.Context, s *chainState) (*Violation, error) {
	tc, err := s.graph.TeacherCoordinatorByID(ctx, s.in.TeacherCoordinatorID)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return &Violation{CategoryNotFound, MsgTeacherCoordinatorMissing}, nil
	}
	if tc.TeacherCoordinatorSchoolID != s.in.SchoolID {
		return &Violation{CategorySchoolMismatch, MsgTeacherCoordinatorSchool}, nil
	}
	s.teacherCoordinator = tc
	return nil, nil
}

func checkSharedCoordinator(_ context.Context, s *chainState) (*Violation, error) {
	if s.teacherCoordinator.TeacherCoordinatorCoordinatorID != s.groupCoordinator.GroupCoordinatorCoordinatorID {
		return &Violation{CategoryRelationMismatch, MsgCoordinatorNotShared}, nil
	}
	return nil, nil
}

func fetchTeacherField(ctx context.Context, s *chainState) (*Violation, error) {
	tf, err := s.graph.TeacherFieldByID(ctx, s.in.TeacherFieldID)
	if err != nil {
		return nil, err
	}
	if tf == nil {
		return &Violation{CategoryNotFound, MsgTeacherFieldMissing}, nil
	}
	if tf.TeacherFieldSchoolID != s.in.SchoolID {
		return &Violation{CategorySchoolMismatch, MsgTeacherFieldSchool}, nil
	}
	s.teacherField = tf
	return nil, nil
}

func checkFieldTeacher(_ context.Context, s *chainState) (*Violation, error) {
	if s.teacherField.TeacherFieldTeacherID != s.teacherCoordinator.TeacherCoordinatorTeacherID {
		return &Violation{CategoryRelationMismatch, MsgTeacherNotInField}, nil
	}
	return nil, nil
}

func fetchSubject(ctx context.Context, s *chainState) (*Violation, error) {
	su, err := s.graph.SubjectByID(ctx, s.in.SubjectID)
	if err != nil {
		return nil, err
	}
	if su == nil {
		return &Violation{CategoryNotFound, MsgSubjectMissing}, nil
	}
	if su.SubjectSchoolID != s.in.SchoolID {
		return &Violation{CategorySchoolMismatch, MsgSubjectSchool}, nil
	}
	if su.SubjectLevelID != s.in.LevelID {
		return &Violation{CategoryRelationMismatch, MsgSubjectLevelMismatch}, nil
	}
	s.subject = su
	return nil, nil
}

func checkSubjectField(_ context.Context, s *chainState) (*Violation, error) {
	if s.subject.SubjectFieldID != s.teacherField.TeacherFieldFieldID {
		return &Violation{CategoryRelationMismatch, MsgSubjectFieldMismatch}, nil
	}
	return nil, nil
}
