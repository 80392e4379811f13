package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignDTO "schoolku_backend/internals/features/school/assignments/dto"
	assignModel "schoolku_backend/internals/features/school/assignments/model"
	helper "schoolku_backend/internals/helpers"
)

type TeacherCoordinatorController struct {
	DB *gorm.DB
}

func NewTeacherCoordinatorController(db *gorm.DB) *TeacherCoordinatorController {
	return &TeacherCoordinatorController{DB: db}
}

// POST /teacher-coordinators
func (h *TeacherCoordinatorController) Create(c *fiber.Ctx) error {
	var req assignDTO.TeacherCoordinatorRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] teacher_coordinator insert fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "Teacher coordinator created!")
}

// GET /teacher-coordinators
func (h *TeacherCoordinatorController) List(c *fiber.Ctx) error {
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ms []assignModel.TeacherCoordinatorModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("teacher_coordinator_school_id = ?", schoolID).
		Order("teacher_coordinator_created_at ASC").
		Find(&ms).Error; err != nil {
		log.Printf("[ERROR] teacher_coordinator list fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(ms) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No teacher coordinators found")
	}
	return helper.JsonPayload(c, ms)
}

// GET /teacher-coordinators/:id
func (h *TeacherCoordinatorController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m assignModel.TeacherCoordinatorModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("teacher_coordinator_id = ? AND teacher_coordinator_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher coordinator not found")
		}
		log.Printf("[ERROR] teacher_coordinator fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonPayload(c, m)
}

// DELETE /teacher-coordinators/:id
func (h *TeacherCoordinatorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("teacher_coordinator_id = ? AND teacher_coordinator_school_id = ?", id, schoolID).
		Delete(&assignModel.TeacherCoordinatorModel{})
	if res.Error != nil {
		log.Printf("[ERROR] teacher_coordinator delete fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher coordinator not deleted")
	}
	return helper.JsonOK(c, "Teacher coordinator deleted")
}
