package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionDTO "schoolku_backend/internals/features/school/sessions/dto"
	"schoolku_backend/internals/features/school/sessions/service"
	helper "schoolku_backend/internals/helpers"
)

// SessionController orchestrates the session command flow: field pipeline →
// assignment validator → single write. No write happens on any validator
// failure, and validation fully completes before the write is attempted.
type SessionController struct {
	store     service.SessionStore
	validator *service.AssignmentValidator
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{
		store:     service.NewSessionStore(db),
		validator: service.NewAssignmentValidator(service.NewEntityGraph(db)),
	}
}

// newSessionControllerWith lets tests swap in fakes.
func newSessionControllerWith(store service.SessionStore, graph service.EntityGraph) *SessionController {
	return &SessionController{
		store:     store,
		validator: service.NewAssignmentValidator(graph),
	}
}

// POST /sessions
func (h *SessionController) CreateSession(c *fiber.Ctx) error {
	var req sessionDTO.SessionRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	viol, err := h.validator.Validate(c.UserContext(), req.ToAssignment())
	if err != nil {
		log.Printf("[ERROR] session validation fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if viol != nil {
		return helper.JsonError(c, service.StatusForCreate(*viol), viol.Message)
	}

	m := req.ToModel()
	if err := h.store.Insert(c.UserContext(), &m); err != nil {
		log.Printf("[ERROR] session insert fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "Session created!")
}

// GET /sessions
func (h *SessionController) ListSessions(c *fiber.Ctx) error {
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ms, err := h.store.ListBySchool(c.UserContext(), schoolID)
	if err != nil {
		log.Printf("[ERROR] session list fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(ms) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No sessions found")
	}
	return helper.JsonPayload(c, sessionDTO.FromSessionModels(ms))
}

// GET /sessions/:id
func (h *SessionController) GetSession(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := h.store.FindByID(c.UserContext(), id, schoolID)
	if err != nil {
		log.Printf("[ERROR] session fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}
	return helper.JsonPayload(c, sessionDTO.FromSessionModel(*m))
}

// PUT /sessions/:id
//
// Update re-validates the full coherence graph against the new values, not a
// diff. The storage-level not-found (zero rows touched) is distinct from a
// relational violation and is checked after validation.
func (h *SessionController) UpdateSession(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req sessionDTO.SessionRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	viol, err := h.validator.Validate(c.UserContext(), req.ToAssignment())
	if err != nil {
		log.Printf("[ERROR] session validation fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if viol != nil {
		return helper.JsonError(c, service.StatusForUpdate(*viol), viol.Message)
	}

	m := req.ToModel()
	rows, err := h.store.Update(c.UserContext(), id, req.SchoolID, &m)
	if err != nil {
		log.Printf("[ERROR] session update fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if rows == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not updated")
	}
	return helper.JsonOK(c, "Session updated!")
}

// DELETE /sessions/:id
// Delete needs only the identifier and the school scope; the coherence graph
// is not re-validated.
func (h *SessionController) DeleteSession(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := h.store.Delete(c.UserContext(), id, schoolID)
	if err != nil {
		log.Printf("[ERROR] session delete fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if rows == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not deleted")
	}
	return helper.JsonOK(c, "Session deleted")
}
