package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fieldDTO "schoolku_backend/internals/features/school/fields/dto"
	fieldModel "schoolku_backend/internals/features/school/fields/model"
	helper "schoolku_backend/internals/helpers"
)

type FieldController struct {
	DB *gorm.DB
}

func NewFieldController(db *gorm.DB) *FieldController {
	return &FieldController{DB: db}
}

// POST /fields
func (h *FieldController) CreateField(c *fiber.Ctx) error {
	var req fieldDTO.FieldRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] field insert fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "Field created!")
}

// GET /fields
func (h *FieldController) ListFields(c *fiber.Ctx) error {
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ms []fieldModel.FieldModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("field_school_id = ?", schoolID).
		Order("field_created_at ASC").
		Find(&ms).Error; err != nil {
		log.Printf("[ERROR] field list fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(ms) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No fields found")
	}
	return helper.JsonPayload(c, ms)
}

// GET /fields/:id
func (h *FieldController) GetField(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m fieldModel.FieldModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("field_id = ? AND field_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Field not found")
		}
		log.Printf("[ERROR] field fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonPayload(c, m)
}

// PUT /fields/:id
func (h *FieldController) UpdateField(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req fieldDTO.FieldRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	res := h.DB.WithContext(c.UserContext()).
		Model(&fieldModel.FieldModel{}).
		Where("field_id = ? AND field_school_id = ?", id, req.SchoolID).
		Updates(map[string]interface{}{
			"field_name": req.Name,
			"field_code": req.Code,
		})
	if res.Error != nil {
		log.Printf("[ERROR] field update fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Field not updated")
	}
	return helper.JsonOK(c, "Field updated!")
}

// DELETE /fields/:id
func (h *FieldController) DeleteField(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("field_id = ? AND field_school_id = ?", id, schoolID).
		Delete(&fieldModel.FieldModel{})
	if res.Error != nil {
		log.Printf("[ERROR] field delete fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Field not deleted")
	}
	return helper.JsonOK(c, "Field deleted")
}
