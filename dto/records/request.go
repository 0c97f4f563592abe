package records

import (
	"fmt"
	"strings"
	"time"

	"github.com/officialsayandeeppaul/RecordHub/models"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxContentLen     = 50000
	maxTags           = 10
	maxTagLen         = 50
)

type CreateRecordRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Content     string                `json:"content"`
	Status      models.RecordStatus   `json:"status"`
	Priority    models.RecordPriority `json:"priority"`
	DueDate     *time.Time            `json:"dueDate"`
	Tags        []string              `json:"tags"`
	CategoryID  *uint                 `json:"categoryId"`
}

// UpdateRecordRequest carries pointers so that only supplied fields change.
type UpdateRecordRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Content     *string                `json:"content"`
	Status      *models.RecordStatus   `json:"status"`
	Priority    *models.RecordPriority `json:"priority"`
	DueDate     *time.Time             `json:"dueDate"`
	Tags        *[]string              `json:"tags"`
	CategoryID  *uint                  `json:"categoryId"`
}

func (r *CreateRecordRequest) Validate() map[string]string {
	errors := make(map[string]string)

	title := strings.TrimSpace(r.Title)
	if title == "" {
		errors["title"] = "title is required"
	} else if len(title) > maxTitleLen {
		errors["title"] = fmt.Sprintf("title must be at most %d characters", maxTitleLen)
	}
	if len(r.Description) > maxDescriptionLen {
		errors["description"] = fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)
	}
	if len(r.Content) > maxContentLen {
		errors["content"] = fmt.Sprintf("content must be at most %d characters", maxContentLen)
	}
	if r.Status != "" && !r.Status.IsValid() {
		errors["status"] = "status must be ACTIVE, PENDING, COMPLETED, or ARCHIVED"
	}
	if r.Priority != "" && !r.Priority.IsValid() {
		errors["priority"] = "priority must be LOW, MEDIUM, HIGH, or URGENT"
	}
	if msg := validateTags(r.Tags); msg != "" {
		errors["tags"] = msg
	}

	return errors
}

func (r *UpdateRecordRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			errors["title"] = "title cannot be empty"
		} else if len(title) > maxTitleLen {
			errors["title"] = fmt.Sprintf("title must be at most %d characters", maxTitleLen)
		}
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionLen {
		errors["description"] = fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)
	}
	if r.Content != nil && len(*r.Content) > maxContentLen {
		errors["content"] = fmt.Sprintf("content must be at most %d characters", maxContentLen)
	}
	if r.Status != nil && !r.Status.IsValid() {
		errors["status"] = "status must be ACTIVE, PENDING, COMPLETED, or ARCHIVED"
	}
	if r.Priority != nil && !r.Priority.IsValid() {
		errors["priority"] = "priority must be LOW, MEDIUM, HIGH, or URGENT"
	}
	if r.Tags != nil {
		if msg := validateTags(*r.Tags); msg != "" {
			errors["tags"] = msg
		}
	}

	return errors
}

func validateTags(tags []string) string {
	if len(tags) > maxTags {
		return fmt.Sprintf("at most %d tags are allowed", maxTags)
	}
	for _, tag := range tags {
		if len(tag) > maxTagLen {
			return fmt.Sprintf("each tag must be at most %d characters", maxTagLen)
		}
	}
	return ""
}
