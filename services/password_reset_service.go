package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/officialsayandeeppaul/RecordHub/models"
	"github.com/officialsayandeeppaul/RecordHub/utils"

	"gorm.io/gorm"
)

var (
	// ErrResetFieldsMissing is returned before any lookup when token or
	// password is absent.
	ErrResetFieldsMissing = errors.New("token and password are required")
	ErrResetPasswordShort = errors.New("password must be at least 8 characters")
	// ErrResetTokenInvalid deliberately covers both unknown and
	// already-consumed tokens.
	ErrResetTokenInvalid = errors.New("invalid or expired reset token")
	// ErrResetTokenExpired is distinct from ErrResetTokenInvalid: the token
	// was real but is past its expiry.
	ErrResetTokenExpired = errors.New("reset token has expired, request a new one")
)

const minPasswordLen = 8

// ResetMailer is the slice of the mail client the service needs.
type ResetMailer interface {
	SendPasswordResetEmail(toEmail, name, resetLink string) error
}

// PasswordResetService owns the password-reset token lifecycle. No other
// component creates or mutates password_reset_tokens rows.
type PasswordResetService struct {
	db        *gorm.DB
	mailer    ResetMailer
	baseURL   string
	resetPath string
}

func NewPasswordResetService(db *gorm.DB, mailer ResetMailer, baseURL, resetPath string) *PasswordResetService {
	return &PasswordResetService{
		db:        db,
		mailer:    mailer,
		baseURL:   baseURL,
		resetPath: resetPath,
	}
}

// Issue creates a reset token for the account behind email and mails the
// reset link. The outcome is uniform whether or not the account exists:
// a nil return never reveals anything to the caller. Dispatch failures are
// logged and swallowed for the same reason; the token is durable before any
// network I/O so the user can simply retry the link request.
func (s *PasswordResetService) Issue(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	rawToken, tokenHash, err := generateResetToken()
	if err != nil {
		return err
	}

	// Dropping every prior row keeps at most one valid token per email.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", user.Email).Delete(&models.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.PasswordResetToken{
			Email:     user.Email,
			TokenHash: tokenHash,
			ExpiresAt: time.Now().Add(models.PasswordResetTokenTTL),
		}).Error
	})
	if err != nil {
		return err
	}

	if s.mailer != nil {
		if err := s.mailer.SendPasswordResetEmail(user.Email, user.Name, s.buildResetLink(rawToken)); err != nil {
			log.Printf("failed to send password reset email to %s: %v", user.Email, err)
		}
	}

	return nil
}

// Consume validates token, sets the account password to newPassword and
// invalidates every token for that email. The conditional delete keyed on
// the token hash is the only synchronization point: of two concurrent
// Consume calls on the same token exactly one observes RowsAffected == 1.
func (s *PasswordResetService) Consume(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" || newPassword == "" {
		return ErrResetFieldsMissing
	}
	if len(newPassword) < minPasswordLen {
		return ErrResetPasswordShort
	}

	tokenHash := hashResetToken(token)
	now := time.Now()

	var resetToken models.PasswordResetToken
	if err := s.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&resetToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	if resetToken.IsExpired(now) {
		if err := s.db.WithContext(ctx).Delete(&models.PasswordResetToken{}, resetToken.ID).Error; err != nil {
			return err
		}
		return ErrResetTokenExpired
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("token_hash = ? AND expires_at > ?", tokenHash, now).
			Delete(&models.PasswordResetToken{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race to a concurrent consumer, or the row expired
			// between lookup and delete.
			return ErrResetTokenInvalid
		}

		var user models.User
		if err := tx.Where("email = ?", resetToken.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResetTokenInvalid
			}
			return err
		}

		if err := tx.Model(&user).Update("password_hash", passwordHash).Error; err != nil {
			return err
		}

		// Sibling tokens for the same email die with the consumed one.
		return tx.Where("email = ?", resetToken.Email).Delete(&models.PasswordResetToken{}).Error
	})
}

func generateResetToken() (string, string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", err
	}
	raw := hex.EncodeToString(tokenBytes)
	return raw, hashResetToken(raw), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func (s *PasswordResetService) buildResetLink(token string) string {
	base := strings.TrimRight(s.baseURL, "/") + s.resetPath

	escapedToken := url.QueryEscape(token)
	if strings.Contains(base, "?") {
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			return base + "token=" + escapedToken
		}
		return base + "&token=" + escapedToken
	}
	return base + "?token=" + escapedToken
}
