package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupDTO "schoolku_backend/internals/features/school/groups/dto"
	groupModel "schoolku_backend/internals/features/school/groups/model"
	helper "schoolku_backend/internals/helpers"
)

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

// POST /groups
func (h *GroupController) CreateGroup(c *fiber.Ctx) error {
	var req groupDTO.GroupRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] group insert fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "Group created!")
}

// GET /groups
func (h *GroupController) ListGroups(c *fiber.Ctx) error {
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ms []groupModel.GroupModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("group_school_id = ?", schoolID).
		Order("group_created_at ASC").
		Find(&ms).Error; err != nil {
		log.Printf("[ERROR] group list fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(ms) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No groups found")
	}
	return helper.JsonPayload(c, ms)
}

// GET /groups/:id
func (h *GroupController) GetGroup(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m groupModel.GroupModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("group_id = ? AND group_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		}
		log.Printf("[ERROR] group fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonPayload(c, m)
}

// PUT /groups/:id
func (h *GroupController) UpdateGroup(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req groupDTO.GroupRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	updates := map[string]interface{}{
		"group_level_id": req.LevelID,
		"group_name":     req.Name,
	}
	if req.Capacity != nil {
		updates["group_capacity"] = *req.Capacity
	}

	res := h.DB.WithContext(c.UserContext()).
		Model(&groupModel.GroupModel{}).
		Where("group_id = ? AND group_school_id = ?", id, req.SchoolID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] group update fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Group not updated")
	}
	return helper.JsonOK(c, "Group updated!")
}

// DELETE /groups/:id
func (h *GroupController) DeleteGroup(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("group_id = ? AND group_school_id = ?", id, schoolID).
		Delete(&groupModel.GroupModel{})
	if res.Error != nil {
		log.Printf("[ERROR] group delete fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Group not deleted")
	}
	return helper.JsonOK(c, "Group deleted")
}
