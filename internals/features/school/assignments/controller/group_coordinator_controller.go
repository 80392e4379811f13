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

type GroupCoordinatorController struct {
	DB *gorm.DB
}

func NewGroupCoordinatorController(db *gorm.DB) *GroupCoordinatorController {
	return &GroupCoordinatorController{DB: db}
}

// POST /group-coordinators
func (h *GroupCoordinatorController) Create(c *fiber.Ctx) error {
	var req assignDTO.GroupCoordinatorRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] group_coordinator insert fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "Group coordinator created!")
}

// GET /group-coordinators
func (h *GroupCoordinatorController) List(c *fiber.Ctx) error {
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ms []assignModel.GroupCoordinatorModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("group_coordinator_school_id = ?", schoolID).
		Order("group_coordinator_created_at ASC").
		Find(&ms).Error; err != nil {
		log.Printf("[ERROR] group_coordinator list fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(ms) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No group coordinators found")
	}
	return helper.JsonPayload(c, ms)
}

// GET /group-coordinators/:id
func (h *GroupCoordinatorController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m assignModel.GroupCoordinatorModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("group_coordinator_id = ? AND group_coordinator_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group coordinator not found")
		}
		log.Printf("[ERROR] group_coordinator fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonPayload(c, m)
}

// DELETE /group-coordinators/:id
func (h *GroupCoordinatorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("group_coordinator_id = ? AND group_coordinator_school_id = ?", id, schoolID).
		Delete(&assignModel.GroupCoordinatorModel{})
	if res.Error != nil {
		log.Printf("[ERROR] group_coordinator delete fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Group coordinator not deleted")
	}
	return helper.JsonOK(c, "Group coordinator deleted")
}
