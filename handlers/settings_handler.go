package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/officialsayandeeppaul/RecordHub/dto"
	userdto "github.com/officialsayandeeppaul/RecordHub/dto/users"
	"github.com/officialsayandeeppaul/RecordHub/middleware"
	"github.com/officialsayandeeppaul/RecordHub/models"
	"github.com/officialsayandeeppaul/RecordHub/utils"
)

// SettingsHandler serves the authenticated user's own profile.
type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

func (h *SettingsHandler) GetMyProfile(c *fiber.Ctx) error {
	user, respErr := h.currentUser(c)
	if user == nil {
		return respErr
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "profile retrieved", dto.NewUserSummary(*user))
}

func (h *SettingsHandler) UpdateMyProfile(c *fiber.Ctx) error {
	var req userdto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	user, respErr := h.currentUser(c)
	if user == nil {
		return respErr
	}

	user.Name = strings.TrimSpace(req.Name)
	if err := h.db.Save(user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update profile", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "profile updated successfully", dto.NewUserSummary(*user))
}

func (h *SettingsHandler) ChangePassword(c *fiber.Ctx) error {
	var req userdto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	user, respErr := h.currentUser(c)
	if user == nil {
		return respErr
	}

	if !utils.CheckPassword(user.PasswordHash, req.OldPassword) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "current password is incorrect", nil)
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to hash password", nil)
	}

	if err := h.db.Model(user).Update("password_hash", passwordHash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to change password", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "password changed successfully", nil)
}

// currentUser resolves the JWT subject to a user row, writing the error
// response itself when that fails.
func (h *SettingsHandler) currentUser(c *fiber.Ctx) (*models.User, error) {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return nil, utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var user models.User
	if err := h.db.First(&user, claims.UserID).Error; err != nil {
		return nil, utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
	}
	return &user, nil
}
