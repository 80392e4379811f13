package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	levelDTO "schoolku_backend/internals/features/school/levels/dto"
	levelModel "schoolku_backend/internals/features/school/levels/model"
	helper "schoolku_backend/internals/helpers"
)

type LevelController struct {
	DB *gorm.DB
}

func NewLevelController(db *gorm.DB) *LevelController {
	return &LevelController{DB: db}
}

// POST /levels
func (h *LevelController) CreateLevel(c *fiber.Ctx) error {
	var req levelDTO.LevelRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] level insert fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "Level created!")
}

// GET /levels
func (h *LevelController) ListLevels(c *fiber.Ctx) error {
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ms []levelModel.LevelModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("level_school_id = ?", schoolID).
		Order("level_created_at ASC").
		Find(&ms).Error; err != nil {
		log.Printf("[ERROR] level list fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(ms) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No levels found")
	}
	return helper.JsonPayload(c, ms)
}

// GET /levels/:id
func (h *LevelController) GetLevel(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m levelModel.LevelModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("level_id = ? AND level_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
		}
		log.Printf("[ERROR] level fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonPayload(c, m)
}

// PUT /levels/:id
func (h *LevelController) UpdateLevel(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req levelDTO.LevelRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	res := h.DB.WithContext(c.UserContext()).
		Model(&levelModel.LevelModel{}).
		Where("level_id = ? AND level_school_id = ?", id, req.SchoolID).
		Updates(map[string]interface{}{
			"level_name": req.Name,
			"level_code": req.Code,
		})
	if res.Error != nil {
		log.Printf("[ERROR] level update fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Level not updated")
	}
	return helper.JsonOK(c, "Level updated!")
}

// DELETE /levels/:id
func (h *LevelController) DeleteLevel(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("level_id = ? AND level_school_id = ?", id, schoolID).
		Delete(&levelModel.LevelModel{})
	if res.Error != nil {
		log.Printf("[ERROR] level delete fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Level not deleted")
	}
	return helper.JsonOK(c, "Level deleted")
}
