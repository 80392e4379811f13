package service

// Category tags which kind of invariant a session assignment broke.
type Category string

const (
	CategoryInvalidTimeRange Category = "invalid_time_range"
	CategoryNotFound         Category = "not_found"
	CategorySchoolMismatch   Category = "school_mismatch"
	CategoryRelationMismatch Category = "relation_mismatch"
	CategoryInvalidRole      Category = "invalid_role"
	CategoryInvalidStatus    Category = "invalid_status"
)

// Violation is the first broken invariant of a proposed assignment. The
// message strings are part of the API contract and must not be reworded.
type Violation struct {
	Category Category
	Message  string
}

const (
	MsgStartTimeTooLate = "The session start time must not exceed 23:00"

	MsgGroupCoordinatorMissing = "Please make sure the group_coordinator assignment exists"
	MsgGroupCoordinatorSchool  = "Please make sure the group_coordinator belongs to the school"

	MsgGroupLevelMismatch   = "Please make sure the group belongs to the level"
	MsgGroupNotCoordinators = "Please make sure the group is the same assigned to the coordinator"
	MsgCoordinatorNotRole   = "Please pass a user with a coordinator role"
	MsgCoordinatorNotActive = "Please pass an active coordinator"

	MsgTeacherCoordinatorMissing = "Please make sure the teacher_coordinator assignment exists"
	MsgTeacherCoordinatorSchool  = "Please make sure the teacher_coordinator belongs to the school"
	MsgCoordinatorNotShared      = "Please make sure the coordinator has been assigned to both the group and the teacher"

	MsgTeacherFieldMissing = "Please make sure the field_teacher assignment exists"
	MsgTeacherFieldSchool  = "Please make sure the field assigned to the teacher belongs to the school"
	MsgTeacherNotInField   = "Please make sure the teacher assigned to the coordinator is also assigned to the field"

	MsgSubjectMissing       = "Please make sure the subject exists"
	MsgSubjectSchool        = "Please make sure the subject belongs to the school"
	MsgSubjectLevelMismatch = "Please make sure the subject belongs to the level"
	MsgSubjectFieldMismatch = "Please make sure the field assigned to teacher is the same in the parent subject"
)
