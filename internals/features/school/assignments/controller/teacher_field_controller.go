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

type TeacherFieldController struct {
	DB *gorm.DB
}

func NewTeacherFieldController(db *gorm.DB) *TeacherFieldController {
	return &TeacherFieldController{DB: db}
}

// POST /teacher-fields
func (h *TeacherFieldController) Create(c *fiber.Ctx) error {
	var req assignDTO.TeacherFieldRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] teacher_field insert fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "Teacher field created!")
}

// GET /teacher-fields
func (h *TeacherFieldController) List(c *fiber.Ctx) error {
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ms []assignModel.TeacherFieldModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("teacher_field_school_id = ?", schoolID).
		Order("teacher_field_created_at ASC").
		Find(&ms).Error; err != nil {
		log.Printf("[ERROR] teacher_field list fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(ms) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No teacher fields found")
	}
	return helper.JsonPayload(c, ms)
}

// GET /teacher-fields/:id
func (h *TeacherFieldController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m assignModel.TeacherFieldModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("teacher_field_id = ? AND teacher_field_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher field not found")
		}
		log.Printf("[ERROR] teacher_field fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonPayload(c, m)
}

// DELETE /teacher-fields/:id
func (h *TeacherFieldController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("teacher_field_id = ? AND teacher_field_school_id = ?", id, schoolID).
		Delete(&assignModel.TeacherFieldModel{})
	if res.Error != nil {
		log.Printf("[ERROR] teacher_field delete fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher field not deleted")
	}
	return helper.JsonOK(c, "Teacher field deleted")
}
