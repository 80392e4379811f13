package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectDTO "schoolku_backend/internals/features/school/subjects/dto"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	helper "schoolku_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// POST /subjects
func (h *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req subjectDTO.SubjectRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] subject insert fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "Subject created!")
}

// GET /subjects
func (h *SubjectController) ListSubjects(c *fiber.Ctx) error {
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ms []subjectModel.SubjectModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("subject_school_id = ?", schoolID).
		Order("subject_created_at ASC").
		Find(&ms).Error; err != nil {
		log.Printf("[ERROR] subject list fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(ms) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No subjects found")
	}
	return helper.JsonPayload(c, ms)
}

// GET /subjects/:id
func (h *SubjectController) GetSubject(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m subjectModel.SubjectModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		log.Printf("[ERROR] subject fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonPayload(c, m)
}

// PUT /subjects/:id
func (h *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req subjectDTO.SubjectRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	res := h.DB.WithContext(c.UserContext()).
		Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ? AND subject_school_id = ?", id, req.SchoolID).
		Updates(map[string]interface{}{
			"subject_level_id": req.LevelID,
			"subject_field_id": req.FieldID,
			"subject_name":     req.Name,
			"subject_code":     req.Code,
		})
	if res.Error != nil {
		log.Printf("[ERROR] subject update fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not updated")
	}
	return helper.JsonOK(c, "Subject updated!")
}

// DELETE /subjects/:id
func (h *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		Delete(&subjectModel.SubjectModel{})
	if res.Error != nil {
		log.Printf("[ERROR] subject delete fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not deleted")
	}
	return helper.JsonOK(c, "Subject deleted")
}
