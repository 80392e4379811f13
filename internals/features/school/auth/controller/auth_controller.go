package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	configs "schoolku_backend/internals/configs"
	constants "schoolku_backend/internals/constants"
	authDTO "schoolku_backend/internals/features/school/auth/dto"
	userModel "schoolku_backend/internals/features/school/users/model"
	helper "schoolku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if errs := helper.BindBody(c, &req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	req.Normalize()
	if errs := helper.CheckFields(req); errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	var u userModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("user_email = ?", req.Email).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("[ERROR] login fetch fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if u.UserStatus != constants.StatusActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       u.UserID.String(),
		"school_id": u.UserSchoolID.String(),
		"role":      u.UserRole,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(12 * time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] token sign fault: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonPayload(c, authDTO.LoginResponse{Token: signed})
}
