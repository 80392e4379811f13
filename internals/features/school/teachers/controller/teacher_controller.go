package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherDTO "schoolku_backend/internals/features/school/teachers/dto"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	helper "schoolku_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// POST /teachers
func (h *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req teacherDTO.TeacherRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] teacher insert fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "Teacher created!")
}

// GET /teachers
func (h *TeacherController) ListTeachers(c *fiber.Ctx) error {
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ms []teacherModel.TeacherModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("teacher_school_id = ?", schoolID).
		Order("teacher_created_at ASC").
		Find(&ms).Error; err != nil {
		log.Printf("[ERROR] teacher list fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(ms) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No teachers found")
	}
	return helper.JsonPayload(c, ms)
}

// GET /teachers/:id
func (h *TeacherController) GetTeacher(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m teacherModel.TeacherModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Printf("[ERROR] teacher fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonPayload(c, m)
}

// PUT /teachers/:id
func (h *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req teacherDTO.TeacherRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	res := h.DB.WithContext(c.UserContext()).
		Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ? AND teacher_school_id = ?", id, req.SchoolID).
		Updates(map[string]interface{}{
			"teacher_name":  req.Name,
			"teacher_email": req.Email,
		})
	if res.Error != nil {
		log.Printf("[ERROR] teacher update fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not updated")
	}
	return helper.JsonOK(c, "Teacher updated!")
}

// DELETE /teachers/:id
func (h *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		Delete(&teacherModel.TeacherModel{})
	if res.Error != nil {
		log.Printf("[ERROR] teacher delete fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not deleted")
	}
	return helper.JsonOK(c, "Teacher deleted")
}
