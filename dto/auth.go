package dto

import (
	"net/mail"
	"strings"
	"time"

	"github.com/officialsayandeeppaul/RecordHub/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User    UserSummary `json:"user"`
	Message string      `json:"message,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	TokenType    string      `json:"tokenType,omitempty"`
	ExpiresAt    time.Time   `json:"expiresAt"`
	User         UserSummary `json:"user"`
}

type UserSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	TokenType    string    `json:"tokenType,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetSubmission struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		errors["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errors["email"] = "invalid email format"
	}
	if len(r.Password) < 8 {
		errors["password"] = "password must be at least 8 characters"
	}

	return errors
}

func (r *LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		errors["email"] = "email is required"
	}
	if r.Password == "" {
		errors["password"] = "password is required"
	}

	return errors
}

func NewUserSummary(user models.User) UserSummary {
	return UserSummary{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
