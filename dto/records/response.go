package records

import (
	"time"

	"github.com/officialsayandeeppaul/RecordHub/models"
)

// CategoryRef is the reduced category projection joined onto record
// responses.
type CategoryRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type RecordResponse struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Content     string                `json:"content,omitempty"`
	Status      models.RecordStatus   `json:"status"`
	Priority    models.RecordPriority `json:"priority"`
	DueDate     *time.Time            `json:"dueDate"`
	Tags        []string              `json:"tags"`
	CategoryID  *uint                 `json:"categoryId"`
	Category    *CategoryRef          `json:"category"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

func NewRecordResponse(record *models.Record) RecordResponse {
	if record == nil {
		return RecordResponse{}
	}

	resp := RecordResponse{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		Content:     record.Content,
		Status:      record.Status,
		Priority:    record.Priority,
		DueDate:     record.DueDate,
		Tags:        record.Tags,
		CategoryID:  record.CategoryID,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}

	if resp.Tags == nil {
		resp.Tags = []string{}
	}

	if record.Category != nil {
		resp.Category = &CategoryRef{
			ID:    record.Category.ID,
			Name:  record.Category.Name,
			Color: record.Category.Color,
			Icon:  record.Category.Icon,
		}
	}

	return resp
}

func NewRecordResponses(recordsList []models.Record) []RecordResponse {
	responses := make([]RecordResponse, 0, len(recordsList))
	for i := range recordsList {
		responses = append(responses, NewRecordResponse(&recordsList[i]))
	}
	return responses
}
