package handlers

import (
	"errors"
	"strconv"
	"strings"

	categorydto "github.com/officialsayandeeppaul/RecordHub/dto/categories"
	"github.com/officialsayandeeppaul/RecordHub/middleware"
	"github.com/officialsayandeeppaul/RecordHub/models"
	"github.com/officialsayandeeppaul/RecordHub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// GET /api/categories
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var categories []models.Category
	if err := h.db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve categories", nil)
	}

	counts, err := h.recordCounts(ownerID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve categories", nil)
	}

	responses := make([]categorydto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, categorydto.NewCategoryResponse(&categories[i], counts[categories[i].ID]))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "categories retrieved successfully", responses)
}

// POST /api/categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var req categorydto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	// Fast-path duplicate check; the composite unique index on
	// (owner_id, name) is the authority under concurrent creates.
	var existing models.Category
	err := h.db.Where("owner_id = ? AND name = ?", ownerID, strings.TrimSpace(req.Name)).First(&existing).Error
	if err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "category with this name already exists", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create category", nil)
	}

	category := req.ToModel(ownerID)
	if err := h.db.Create(&category).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "category with this name already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create category", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "category created successfully", categorydto.NewCategoryResponse(&category, 0))
}

// GET /api/categories/:id
func (h *CategoryHandler) GetCategoryByID(c *fiber.Ctx) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	category, err := h.findOwnedCategory(c, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "category not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve category", nil)
	}

	var count int64
	if err := h.db.Model(&models.Record{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve category", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "category retrieved successfully", categorydto.NewCategoryResponse(category, count))
}

// PUT /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	category, err := h.findOwnedCategory(c, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "category not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve category", nil)
	}

	var req categorydto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	if req.Name != nil {
		var duplicate models.Category
		err := h.db.Where("owner_id = ? AND name = ? AND id <> ?", ownerID, strings.TrimSpace(*req.Name), category.ID).
			First(&duplicate).Error
		if err == nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, "category with this name already exists", nil)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update category", nil)
		}
	}

	categorydto.ApplyUpdate(category, &req)

	if err := h.db.Save(category).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "category with this name already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update category", nil)
	}

	var count int64
	if err := h.db.Model(&models.Record{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update category", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "category updated successfully", categorydto.NewCategoryResponse(category, count))
}

// DELETE /api/categories/:id
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	category, err := h.findOwnedCategory(c, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "category not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve category", nil)
	}

	// Records keep living when their category dies; only the reference is
	// cleared.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Record{}).
			Where("category_id = ? AND owner_id = ?", category.ID, ownerID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, category.ID).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete category", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "category deleted successfully", nil)
}

func (h *CategoryHandler) findOwnedCategory(c *fiber.Ctx, ownerID uint) (*models.Category, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	var category models.Category
	if err := h.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (h *CategoryHandler) recordCounts(ownerID uint) (map[uint]int64, error) {
	var rows []struct {
		CategoryID uint
		Count      int64
	}
	if err := h.db.Model(&models.Record{}).
		Select("category_id, COUNT(*) AS count").
		Where("owner_id = ? AND category_id IS NOT NULL", ownerID).
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}
