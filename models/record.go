package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type RecordStatus string
type RecordPriority string

const (
	StatusActive    RecordStatus = "ACTIVE"
	StatusPending   RecordStatus = "PENDING"
	StatusCompleted RecordStatus = "COMPLETED"
	StatusArchived  RecordStatus = "ARCHIVED"
)

const (
	PriorityLow    RecordPriority = "LOW"
	PriorityMedium RecordPriority = "MEDIUM"
	PriorityHigh   RecordPriority = "HIGH"
	PriorityUrgent RecordPriority = "URGENT"
)

// Record rows are scoped to exactly one owner and are deleted permanently,
// so there is no gorm.Model soft-delete column here.
type Record struct {
	ID          uint           `gorm:"primaryKey;autoIncrement:true"`
	Title       string         `gorm:"type:varchar(200);not null;index"`
	Description string         `gorm:"type:varchar(1000)"`
	Content     string         `gorm:"type:longtext"`
	Status      RecordStatus   `gorm:"type:varchar(20);default:'ACTIVE';not null;index"`
	Priority    RecordPriority `gorm:"type:varchar(20);default:'MEDIUM';not null;index"`
	DueDate     *time.Time     `gorm:"index"`
	Tags        []string       `gorm:"serializer:json"`
	// TagIndex is a normalized lowercase ",a,b," rendering of Tags so that
	// exact tag membership can be matched with a portable LIKE query.
	TagIndex   string    `gorm:"type:text"`
	CategoryID *uint     `gorm:"index"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	OwnerID    uint      `gorm:"not null;index"`
	Owner      User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (Record) TableName() string {
	return "records"
}

func (r *Record) BeforeSave(tx *gorm.DB) error {
	r.TagIndex = BuildTagIndex(r.Tags)
	return nil
}

// BuildTagIndex renders tags as ",tag1,tag2," lowercased. Empty slice
// renders as "" so LIKE ",x," can never match a tagless record.
func BuildTagIndex(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return ""
	}
	return "," + strings.Join(cleaned, ",") + ","
}

func (s RecordStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusPending, StatusCompleted, StatusArchived:
		return true
	default:
		return false
	}
}

func (p RecordPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

func AllStatuses() []RecordStatus {
	return []RecordStatus{StatusActive, StatusPending, StatusCompleted, StatusArchived}
}

func AllPriorities() []RecordPriority {
	return []RecordPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}
