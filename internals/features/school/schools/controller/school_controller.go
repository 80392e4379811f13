package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolDTO "schoolku_backend/internals/features/school/schools/dto"
	schoolModel "schoolku_backend/internals/features/school/schools/model"
	helper "schoolku_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

// POST /schools
func (h *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req schoolDTO.SchoolRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] school insert fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "School created!")
}

// GET /schools
func (h *SchoolController) ListSchools(c *fiber.Ctx) error {
	var ms []schoolModel.SchoolModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("school_created_at ASC").
		Find(&ms).Error; err != nil {
		log.Printf("[ERROR] school list fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(ms) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No schools found")
	}
	return helper.JsonPayload(c, ms)
}

// GET /schools/:id
func (h *SchoolController) GetSchool(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m schoolModel.SchoolModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("school_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		log.Printf("[ERROR] school fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonPayload(c, m)
}

// PUT /schools/:id
func (h *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req schoolDTO.SchoolRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	var m schoolModel.SchoolModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("school_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not updated")
		}
		log.Printf("[ERROR] school fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	req.ApplyTo(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		log.Printf("[ERROR] school update fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonOK(c, "School updated!")
}

// DELETE /schools/:id
func (h *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("school_id = ?", id).
		Delete(&schoolModel.SchoolModel{})
	if res.Error != nil {
		log.Printf("[ERROR] school delete fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "School not deleted")
	}
	return helper.JsonOK(c, "School deleted")
}
