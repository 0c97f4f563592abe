package records

import (
	"strings"

	"github.com/officialsayandeeppaul/RecordHub/models"
)

func (r *CreateRecordRequest) ToModel(ownerID uint) models.Record {
	record := models.Record{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Content:     r.Content,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		Tags:        r.Tags,
		CategoryID:  r.CategoryID,
		OwnerID:     ownerID,
	}

	if r.Status == "" {
		record.Status = models.StatusActive
	}
	if r.Priority == "" {
		record.Priority = models.PriorityMedium
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}

	return record
}

func ApplyUpdate(record *models.Record, req *UpdateRecordRequest) {
	if record == nil || req == nil {
		return
	}

	if req.Title != nil {
		record.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Content != nil {
		record.Content = *req.Content
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.Priority != nil {
		record.Priority = *req.Priority
	}
	if req.DueDate != nil {
		record.DueDate = req.DueDate
	}
	if req.Tags != nil {
		record.Tags = *req.Tags
	}
	if req.CategoryID != nil {
		record.CategoryID = req.CategoryID
	}
}
