package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/officialsayandeeppaul/RecordHub/config"
	"github.com/officialsayandeeppaul/RecordHub/dto"
	"github.com/officialsayandeeppaul/RecordHub/models"
	"github.com/officialsayandeeppaul/RecordHub/services"
	"github.com/officialsayandeeppaul/RecordHub/utils"
	"github.com/officialsayandeeppaul/RecordHub/utils/mailer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// resetSentMessage is returned for every non-validation outcome of a
// forgot-password request so the response never reveals whether the
// account exists.
const resetSentMessage = "If the email exists, a reset link has been sent"

type AuthHandler struct {
	db           *gorm.DB
	resetService *services.PasswordResetService
	mailClient   *mailer.Client
	appCfg       config.AppConfig
}

func NewAuthHandler(db *gorm.DB, resetService *services.PasswordResetService, mailClient *mailer.Client, appCfg config.AppConfig) *AuthHandler {
	return &AuthHandler{
		db:           db,
		resetService: resetService,
		mailClient:   mailClient,
		appCfg:       appCfg,
	}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	email := strings.TrimSpace(req.Email)

	var existing models.User
	err := h.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "user with this email already exists", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create user", nil)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to hash password", nil)
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "user with this email already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create user", nil)
	}

	if h.mailClient != nil {
		dashboardLink := strings.TrimRight(h.appCfg.BaseURL, "/") + "/dashboard"
		go func(toEmail, name string) {
			if err := h.mailClient.SendWelcomeEmail(toEmail, name, dashboardLink); err != nil {
				log.Printf("failed to send welcome email to %s: %v", toEmail, err)
			}
		}(user.Email, user.Name)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "user created successfully", dto.RegisterResponse{
		User: dto.NewUserSummary(user),
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	var user models.User
	if err := h.db.Where("email = ?", strings.TrimSpace(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid email or password", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to log in", nil)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid email or password", nil)
	}

	accessToken, claims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate token", nil)
	}

	refreshToken, refreshClaims, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate token", nil)
	}

	stored := models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: refreshClaims.ExpiresAt.Time,
	}
	if err := h.db.Create(&stored).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to persist refresh token", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "login successful", dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    claims.ExpiresAt.Time,
		User:         dto.NewUserSummary(user),
	})
}

// POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if strings.TrimSpace(req.RefreshToken) == "" {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "refreshToken is required", nil)
	}

	claims, err := utils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid or expired refresh token", nil)
	}

	var stored models.RefreshToken
	if err := h.db.Where("token = ? AND expires_at > ?", req.RefreshToken, time.Now()).First(&stored).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid or expired refresh token", nil)
	}

	var user models.User
	if err := h.db.First(&user, claims.UserID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid or expired refresh token", nil)
	}

	accessToken, accessClaims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate token", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "token refreshed", dto.RefreshTokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   accessClaims.ExpiresAt.Time,
	})
}

// POST /api/auth/forgot-password
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid JSON body", nil)
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "email is required", nil)
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid email format", nil)
	}

	if err := h.resetService.Issue(c.Context(), req.Email); err != nil {
		// Generic 500 with no detail; the unknown-account path never fails,
		// so this still reveals nothing about account existence.
		log.Printf("password reset issue failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to process request", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, resetSentMessage, nil)
}

// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.PasswordResetSubmission
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid JSON body", nil)
	}

	err := h.resetService.Consume(c.Context(), req.Token, req.Password)
	switch {
	case err == nil:
		return utils.SuccessResponse(c, fiber.StatusOK, "password has been reset successfully", nil)
	case errors.Is(err, services.ErrResetFieldsMissing):
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "token and password are required", nil)
	case errors.Is(err, services.ErrResetPasswordShort):
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "password must be at least 8 characters", nil)
	case errors.Is(err, services.ErrResetTokenExpired):
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "reset token has expired, please request a new one", nil)
	case errors.Is(err, services.ErrResetTokenInvalid):
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid or expired reset token", nil)
	default:
		log.Printf("password reset consume failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to reset password", nil)
	}
}
