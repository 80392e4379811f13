package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	constants "schoolku_backend/internals/constants"
	assignModel "schoolku_backend/internals/features/school/assignments/model"
	groupModel "schoolku_backend/internals/features/school/groups/model"
	sessionModel "schoolku_backend/internals/features/school/sessions/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	userModel "schoolku_backend/internals/features/school/users/model"
)

// fakeStore keeps sessions in a map and counts writes so tests can assert
// that a rejected request never touched storage.
type fakeStore struct {
	sessions map[uuid.UUID]sessionModel.SessionModel
	inserts  int
	updates  int
	deletes  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: map[uuid.UUID]sessionModel.SessionModel{}}
}

func (s *fakeStore) Insert(_ context.Context, m *sessionModel.SessionModel) error {
	s.inserts++
	if m.SessionID == uuid.Nil {
		m.SessionID = uuid.New()
	}
	s.sessions[m.SessionID] = *m
	return nil
}

func (s *fakeStore) Update(_ context.Context, id, schoolID uuid.UUID, m *sessionModel.SessionModel) (int64, error) {
	s.updates++
	old, ok := s.sessions[id]
	if !ok || old.SessionSchoolID != schoolID {
		return 0, nil
	}
	next := *m
	next.SessionID = id
	next.SessionSchoolID = schoolID
	s.sessions[id] = next
	return 1, nil
}

func (s *fakeStore) Delete(_ context.Context, id, schoolID uuid.UUID) (int64, error) {
	s.deletes++
	old, ok := s.sessions[id]
	if !ok || old.SessionSchoolID != schoolID {
		return 0, nil
	}
	delete(s.sessions, id)
	return 1, nil
}

func (s *fakeStore) FindByID(_ context.Context, id, schoolID uuid.UUID) (*sessionModel.SessionModel, error) {
	m, ok := s.sessions[id]
	if !ok || m.SessionSchoolID != schoolID {
		return nil, nil
	}
	return &m, nil
}

func (s *fakeStore) ListBySchool(_ context.Context, schoolID uuid.UUID) ([]sessionModel.SessionModel, error) {
	var out []sessionModel.SessionModel
	for _, m := range s.sessions {
		if m.SessionSchoolID == schoolID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeGraph serves the validator from maps.
type fakeGraph struct {
	groupCoordinators   map[uuid.UUID]*assignModel.GroupCoordinatorModel
	users               map[uuid.UUID]*userModel.UserModel
	groups              map[uuid.UUID]*groupModel.GroupModel
	teacherCoordinators map[uuid.UUID]*assignModel.TeacherCoordinatorModel
	teacherFields       map[uuid.UUID]*assignModel.TeacherFieldModel
	subjects            map[uuid.UUID]*subjectModel.SubjectModel
}

func (f *fakeGraph) GroupCoordinatorWithUser(_ context.Context, id uuid.UUID) (*assignModel.GroupCoordinatorModel, *userModel.UserModel, error) {
	gc := f.groupCoordinators[id]
	if gc == nil {
		return nil, nil, nil
	}
	return gc, f.users[gc.GroupCoordinatorCoordinatorID], nil
}

func (f *fakeGraph) GroupByID(_ context.Context, id uuid.UUID) (*groupModel.GroupModel, error) {
	return f.groups[id], nil
}

func (f *fakeGraph) TeacherCoordinatorByID(_ context.Context, id uuid.UUID) (*assignModel.TeacherCoordinatorModel, error) {
	return f.teacherCoordinators[id], nil
}

func (f *fakeGraph) TeacherFieldByID(_ context.Context, id uuid.UUID) (*assignModel.TeacherFieldModel, error) {
	return f.teacherFields[id], nil
}

func (f *fakeGraph) SubjectByID(_ context.Context, id uuid.UUID) (*subjectModel.SubjectModel, error) {
	return f.subjects[id], nil
}

type fixture struct {
	app   *fiber.App
	store *fakeStore
	graph *fakeGraph

	school, level, group, gc, tc, tf, subject uuid.UUID
}

// newFixture wires a Fiber app over fakes with a fully consistent entity
// graph, so the happy path passes all coherence checks.
func newFixture() *fixture {
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

	graph := &fakeGraph{
		groupCoordinators: map[uuid.UUID]*assignModel.GroupCoordinatorModel{
			gcID: {GroupCoordinatorID: gcID, GroupCoordinatorSchoolID: school, GroupCoordinatorGroupID: group, GroupCoordinatorCoordinatorID: user},
		},
		users: map[uuid.UUID]*userModel.UserModel{
			user: {UserID: user, UserSchoolID: school, UserRole: constants.RoleCoordinator, UserStatus: constants.StatusActive},
		},
		groups: map[uuid.UUID]*groupModel.GroupModel{
			group: {GroupID: group, GroupSchoolID: school, GroupLevelID: level},
		},
		teacherCoordinators: map[uuid.UUID]*assignModel.TeacherCoordinatorModel{
			tcID: {TeacherCoordinatorID: tcID, TeacherCoordinatorSchoolID: school, TeacherCoordinatorTeacherID: teacher, TeacherCoordinatorCoordinatorID: user},
		},
		teacherFields: map[uuid.UUID]*assignModel.TeacherFieldModel{
			tfID: {TeacherFieldID: tfID, TeacherFieldSchoolID: school, TeacherFieldTeacherID: teacher, TeacherFieldFieldID: field},
		},
		subjects: map[uuid.UUID]*subjectModel.SubjectModel{
			subject: {SubjectID: subject, SubjectSchoolID: school, SubjectLevelID: level, SubjectFieldID: field},
		},
	}

	store := newFakeStore()
	ctl := newSessionControllerWith(store, graph)

	app := fiber.New()
	app.Post("/sessions", ctl.CreateSession)
	app.Get("/sessions", ctl.ListSessions)
	app.Get("/sessions/:id", ctl.GetSession)
	app.Put("/sessions/:id", ctl.UpdateSession)
	app.Delete("/sessions/:id", ctl.DeleteSession)

	return &fixture{
		app: app, store: store, graph: graph,
		school: school, level: level, group: group,
		gc: gcID, tc: tcID, tf: tfID, subject: subject,
	}
}

func (f *fixture) validBody() map[string]interface{} {
	return map[string]interface{}{
		"school_id":             f.school,
		"level_id":              f.level,
		"group_id":              f.group,
		"groupCoordinator_id":   f.gc,
		"teacherCoordinator_id": f.tc,
		"teacherField_id":       f.tf,
		"subject_id":            f.subject,
		"startTime":             420,
		"groupScheduleSlot":     2,
		"teacherScheduleSlot":   5,
	}
}

func (f *fixture) do(t *testing.T, method, target string, body interface{}) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func msgString(t *testing.T, env map[string]json.RawMessage) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal(env["msg"], &s))
	return s
}

func TestCreateSession(t *testing.T) {
	f := newFixture()

	resp, env := f.do(t, http.MethodPost, "/sessions", f.validBody())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Session created!", msgString(t, env))
	assert.JSONEq(t, "true", string(env["success"]))
	assert.Equal(t, 1, f.store.inserts)
}

func TestCreateSessionViolationWritesNothing(t *testing.T) {
	f := newFixture()

	// the teacher's coordinator no longer matches the group's
	f.graph.teacherCoordinators[f.tc].TeacherCoordinatorCoordinatorID = uuid.New()

	resp, env := f.do(t, http.MethodPost, "/sessions", f.validBody())
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please make sure the coordinator has been assigned to both the group and the teacher", msgString(t, env))
	assert.JSONEq(t, "false", string(env["success"]))
	assert.Equal(t, 0, f.store.inserts)
}

func TestCreateSessionMissingEntityIs404(t *testing.T) {
	f := newFixture()

	body := f.validBody()
	body["groupCoordinator_id"] = uuid.New()

	resp, env := f.do(t, http.MethodPost, "/sessions", body)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Please make sure the group_coordinator assignment exists", msgString(t, env))
	assert.Equal(t, 0, f.store.inserts)
}

func TestCreateSessionFieldErrors(t *testing.T) {
	f := newFixture()

	body := f.validBody()
	delete(body, "startTime")
	delete(body, "subject_id")

	resp, env := f.do(t, http.MethodPost, "/sessions", body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, "false", string(env["success"]))
	assert.Equal(t, 0, f.store.inserts)

	var errs []struct {
		Location string `json:"location"`
		Msg      string `json:"msg"`
		Param    string `json:"param"`
	}
	require.NoError(t, json.Unmarshal(env["msg"], &errs))
	params := map[string]string{}
	for _, e := range errs {
		assert.Equal(t, "body", e.Location)
		params[e.Param] = e.Msg
	}
	assert.Equal(t, "Field is required", params["startTime"])
	assert.Equal(t, "Field is required", params["subject_id"])
}

func TestGetSessionRoundTrip(t *testing.T) {
	f := newFixture()

	resp, _ := f.do(t, http.MethodPost, "/sessions", f.validBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Len(t, f.store.sessions, 1)
	var id uuid.UUID
	for k := range f.store.sessions {
		id = k
	}

	resp, env := f.do(t, http.MethodGet, fmt.Sprintf("/sessions/%s?school_id=%s", id, f.school), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got struct {
		SessionID           uuid.UUID `json:"session_id"`
		SchoolID            uuid.UUID `json:"school_id"`
		GroupID             uuid.UUID `json:"group_id"`
		SubjectID           uuid.UUID `json:"subject_id"`
		StartTime           int       `json:"startTime"`
		GroupScheduleSlot   int       `json:"groupScheduleSlot"`
		TeacherScheduleSlot int       `json:"teacherScheduleSlot"`
	}
	require.NoError(t, json.Unmarshal(env["payload"], &got))
	assert.Equal(t, id, got.SessionID)
	assert.Equal(t, f.school, got.SchoolID)
	assert.Equal(t, f.group, got.GroupID)
	assert.Equal(t, f.subject, got.SubjectID)
	assert.Equal(t, 420, got.StartTime)
	assert.Equal(t, 2, got.GroupScheduleSlot)
	assert.Equal(t, 5, got.TeacherScheduleSlot)
}

func TestGetSessionNotFound(t *testing.T) {
	f := newFixture()

	resp, env := f.do(t, http.MethodGet, fmt.Sprintf("/sessions/%s?school_id=%s", uuid.New(), f.school), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Session not found", msgString(t, env))
}

func TestListSessionsEmpty(t *testing.T) {
	f := newFixture()

	resp, env := f.do(t, http.MethodGet, "/sessions?school_id="+f.school.String(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No sessions found", msgString(t, env))
}

func TestListSessionsScopedToSchool(t *testing.T) {
	f := newFixture()

	resp, _ := f.do(t, http.MethodPost, "/sessions", f.validBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := f.do(t, http.MethodGet, "/sessions?school_id="+f.school.String(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var payload []json.RawMessage
	require.NoError(t, json.Unmarshal(env["payload"], &payload))
	assert.Len(t, payload, 1)

	// another school sees nothing
	resp, _ = f.do(t, http.MethodGet, "/sessions?school_id="+uuid.NewString(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateSession(t *testing.T) {
	f := newFixture()

	resp, _ := f.do(t, http.MethodPost, "/sessions", f.validBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var id uuid.UUID
	for k := range f.store.sessions {
		id = k
	}

	body := f.validBody()
	body["startTime"] = 600

	resp, env := f.do(t, http.MethodPut, "/sessions/"+id.String(), body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Session updated!", msgString(t, env))
	assert.Equal(t, 600, f.store.sessions[id].SessionStartTime)
}

func TestUpdateSessionUnknownIDIs404(t *testing.T) {
	f := newFixture()

	resp, env := f.do(t, http.MethodPut, "/sessions/"+uuid.NewString(), f.validBody())
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Session not updated", msgString(t, env))
}

// On update a missing subject is a 400, unlike the other missing entities.
func TestUpdateSessionMissingSubjectIs400(t *testing.T) {
	f := newFixture()

	resp, _ := f.do(t, http.MethodPost, "/sessions", f.validBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var id uuid.UUID
	for k := range f.store.sessions {
		id = k
	}

	body := f.validBody()
	body["subject_id"] = uuid.New()

	resp, env := f.do(t, http.MethodPut, "/sessions/"+id.String(), body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please make sure the subject exists", msgString(t, env))
	assert.Equal(t, 420, f.store.sessions[id].SessionStartTime)
}

func TestDeleteSession(t *testing.T) {
	f := newFixture()

	resp, _ := f.do(t, http.MethodPost, "/sessions", f.validBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var id uuid.UUID
	for k := range f.store.sessions {
		id = k
	}

	resp, env := f.do(t, http.MethodDelete, fmt.Sprintf("/sessions/%s?school_id=%s", id, f.school), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Session deleted", msgString(t, env))
	assert.Empty(t, f.store.sessions)

	resp, env = f.do(t, http.MethodDelete, fmt.Sprintf("/sessions/%s?school_id=%s", id, f.school), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Session not deleted", msgString(t, env))
}

func TestSessionInvalidIDParam(t *testing.T) {
	f := newFixture()

	resp, env := f.do(t, http.MethodGet, "/sessions/not-a-uuid?school_id="+f.school.String(), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid id", msgString(t, env))
}
