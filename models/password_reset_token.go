package models

import "time"

const PasswordResetTokenTTL = time.Hour

// PasswordResetToken stores the sha256 digest of a reset token; the raw
// value only ever travels inside the emailed link. At most one valid token
// exists per email because issuance deletes every prior row for the email.
// Rows are hard-deleted: the conditional delete's affected-row count is the
// synchronization point that makes consumption at-most-once.
type PasswordResetToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:true"`
	Email     string    `gorm:"type:varchar(191);not null;index"`
	TokenHash string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

func (t PasswordResetToken) IsExpired(reference time.Time) bool {
	if reference.IsZero() {
		reference = time.Now()
	}
	return !reference.Before(t.ExpiresAt)
}
