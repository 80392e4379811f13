package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDTO "schoolku_backend/internals/features/school/users/dto"
	userModel "schoolku_backend/internals/features/school/users/model"
	helper "schoolku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// POST /users
func (h *UserController) CreateUser(c *fiber.Ctx) error {
	var req userDTO.UserRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] password hash fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	m := req.ToModel()
	m.UserPassword = string(hash)
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] user insert fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "User created!")
}

// GET /users
func (h *UserController) ListUsers(c *fiber.Ctx) error {
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ms []userModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("user_school_id = ?", schoolID).
		Order("user_created_at ASC").
		Find(&ms).Error; err != nil {
		log.Printf("[ERROR] user list fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(ms) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No users found")
	}
	return helper.JsonPayload(c, ms)
}

// GET /users/:id
func (h *UserController) GetUser(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m userModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("user_id = ? AND user_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] user fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonPayload(c, m)
}

// PUT /users/:id
func (h *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req userDTO.UserRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] password hash fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	updates := map[string]interface{}{
		"user_name":     req.Name,
		"user_email":    req.Email,
		"user_password": string(hash),
	}
	if req.Role != "" {
		updates["user_role"] = req.Role
	}
	if req.Status != "" {
		updates["user_status"] = req.Status
	}

	res := h.DB.WithContext(c.UserContext()).
		Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_school_id = ?", id, req.SchoolID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] user update fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not updated")
	}
	return helper.JsonOK(c, "User updated!")
}

// DELETE /users/:id
func (h *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helper.SchoolIDFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("user_id = ? AND user_school_id = ?", id, schoolID).
		Delete(&userModel.UserModel{})
	if res.Error != nil {
		log.Printf("[ERROR] user delete fault: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not deleted")
	}
	return helper.JsonOK(c, "User deleted")
}
