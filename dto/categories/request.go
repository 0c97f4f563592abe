package categories

import (
	"fmt"
	"strings"

	"github.com/officialsayandeeppaul/RecordHub/models"
)

const (
	maxNameLen        = 50
	maxDescriptionLen = 200
	maxIconLen        = 50
)

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
}

func (r *CreateCategoryRequest) Validate() map[string]string {
	errors := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	if name == "" {
		errors["name"] = "name is required"
	} else if len(name) > maxNameLen {
		errors["name"] = fmt.Sprintf("name must be at most %d characters", maxNameLen)
	}
	if len(r.Description) > maxDescriptionLen {
		errors["description"] = fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)
	}
	if len(r.Icon) > maxIconLen {
		errors["icon"] = fmt.Sprintf("icon must be at most %d characters", maxIconLen)
	}

	return errors
}

func (r *UpdateCategoryRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			errors["name"] = "name cannot be empty"
		} else if len(name) > maxNameLen {
			errors["name"] = fmt.Sprintf("name must be at most %d characters", maxNameLen)
		}
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionLen {
		errors["description"] = fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)
	}
	if r.Icon != nil && len(*r.Icon) > maxIconLen {
		errors["icon"] = fmt.Sprintf("icon must be at most %d characters", maxIconLen)
	}

	return errors
}

func (r *CreateCategoryRequest) ToModel(ownerID uint) models.Category {
	category := models.Category{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Color:       strings.TrimSpace(r.Color),
		Icon:        strings.TrimSpace(r.Icon),
		OwnerID:     ownerID,
	}

	if category.Color == "" {
		category.Color = models.DefaultCategoryColor
	}
	if category.Icon == "" {
		category.Icon = models.DefaultCategoryIcon
	}

	return category
}

func ApplyUpdate(category *models.Category, req *UpdateCategoryRequest) {
	if category == nil || req == nil {
		return
	}

	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		category.Description = strings.TrimSpace(*req.Description)
	}
	if req.Color != nil {
		category.Color = strings.TrimSpace(*req.Color)
	}
	if req.Icon != nil {
		category.Icon = strings.TrimSpace(*req.Icon)
	}
}
