package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForCreate(t *testing.T) {
	cases := []struct {
		name string
		v    Violation
		want int
	}{
		{"time range", Violation{CategoryInvalidTimeRange, MsgStartTimeTooLate}, 400},
		{"group coordinator missing", Violation{CategoryNotFound, MsgGroupCoordinatorMissing}, 404},
		{"teacher coordinator missing", Violation{CategoryNotFound, MsgTeacherCoordinatorMissing}, 404},
		{"teacher field missing", Violation{CategoryNotFound, MsgTeacherFieldMissing}, 404},
		{"subject missing", Violation{CategoryNotFound, MsgSubjectMissing}, 404},
		{"school mismatch", Violation{CategorySchoolMismatch, MsgSubjectSchool}, 400},
		{"relation mismatch", Violation{CategoryRelationMismatch, MsgCoordinatorNotShared}, 400},
		{"invalid role", Violation{CategoryInvalidRole, MsgCoordinatorNotRole}, 400},
		{"invalid status", Violation{CategoryInvalidStatus, MsgCoordinatorNotActive}, 400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusForCreate(tc.v))
		})
	}
}

func TestStatusForUpdate(t *testing.T) {
	cases := []struct {
		name string
		v    Violation
		want int
	}{
		{"group coordinator missing", Violation{CategoryNotFound, MsgGroupCoordinatorMissing}, 404},
		{"teacher coordinator missing", Violation{CategoryNotFound, MsgTeacherCoordinatorMissing}, 404},
		{"teacher field missing", Violation{CategoryNotFound, MsgTeacherFieldMissing}, 404},
		// the one cell where update diverges from create
		{"subject missing", Violation{CategoryNotFound, MsgSubjectMissing}, 400},
		{"time range", Violation{CategoryInvalidTimeRange, MsgStartTimeTooLate}, 400},
		{"school mismatch", Violation{CategorySchoolMismatch, MsgGroupCoordinatorSchool}, 400},
		{"relation mismatch", Violation{CategoryRelationMismatch, MsgSubjectFieldMismatch}, 400},
		{"invalid role", Violation{CategoryInvalidRole, MsgCoordinatorNotRole}, 400},
		{"invalid status", Violation{CategoryInvalidStatus, MsgCoordinatorNotActive}, 400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusForUpdate(tc.v))
		})
	}
}
