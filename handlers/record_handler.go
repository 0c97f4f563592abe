package handlers

import (
	"errors"
	"strconv"
	"strings"

	recorddto "github.com/officialsayandeeppaul/RecordHub/dto/records"
	"github.com/officialsayandeeppaul/RecordHub/middleware"
	"github.com/officialsayandeeppaul/RecordHub/models"
	"github.com/officialsayandeeppaul/RecordHub/services"
	"github.com/officialsayandeeppaul/RecordHub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RecordHandler struct {
	db    *gorm.DB
	query *services.RecordQueryService
}

func NewRecordHandler(db *gorm.DB) *RecordHandler {
	return &RecordHandler{
		db:    db,
		query: services.NewRecordQueryService(db),
	}
}

// POST /api/records
func (h *RecordHandler) CreateRecord(c *fiber.Ctx) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var req recorddto.CreateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	if req.CategoryID != nil {
		if err := h.checkCategoryOwnership(ownerID, *req.CategoryID); err != nil {
			return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "categoryId does not refer to one of your categories", nil)
		}
	}

	record := req.ToModel(ownerID)
	if err := h.db.Create(&record).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create record", nil)
	}

	h.loadCategory(&record)
	return utils.SuccessResponse(c, fiber.StatusCreated, "record created successfully", recorddto.NewRecordResponse(&record))
}

// GET /api/records?page=&limit=&search=&status=&priority=&categoryId=&sortBy=&sortOrder=
func (h *RecordHandler) ListRecords(c *fiber.Ctx) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	params, errMsg := parseListParams(c)
	if errMsg != "" {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, errMsg, nil)
	}

	page, err := h.query.List(c.Context(), ownerID, *params)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve records", nil)
	}

	meta := utils.PaginationMeta{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	return utils.PaginatedResponse(c, fiber.StatusOK, "records retrieved successfully", recorddto.NewRecordResponses(page.Records), meta)
}

// GET /api/records/:id
func (h *RecordHandler) GetRecordByID(c *fiber.Ctx) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	record, err := h.findOwnedRecord(c, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "record not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve record", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "record retrieved successfully", recorddto.NewRecordResponse(record))
}

// PUT /api/records/:id
func (h *RecordHandler) UpdateRecord(c *fiber.Ctx) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	record, err := h.findOwnedRecord(c, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "record not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve record", nil)
	}

	var req recorddto.UpdateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	if req.CategoryID != nil {
		if err := h.checkCategoryOwnership(ownerID, *req.CategoryID); err != nil {
			return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "categoryId does not refer to one of your categories", nil)
		}
	}

	recorddto.ApplyUpdate(record, &req)

	if err := h.db.Save(record).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update record", nil)
	}

	record.Category = nil
	h.loadCategory(record)
	return utils.SuccessResponse(c, fiber.StatusOK, "record updated successfully", recorddto.NewRecordResponse(record))
}

// DELETE /api/records/:id
func (h *RecordHandler) DeleteRecord(c *fiber.Ctx) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "record not found", nil)
	}

	// Permanent delete; records are never soft-deleted.
	result := h.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Record{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete record", nil)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "record not found", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "record deleted successfully", nil)
}

func (h *RecordHandler) findOwnedRecord(c *fiber.Ctx, ownerID uint) (*models.Record, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	var record models.Record
	if err := h.db.Preload("Category").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (h *RecordHandler) checkCategoryOwnership(ownerID, categoryID uint) error {
	var category models.Category
	return h.db.Where("id = ? AND owner_id = ?", categoryID, ownerID).First(&category).Error
}

func (h *RecordHandler) loadCategory(record *models.Record) {
	if record.CategoryID == nil || record.Category != nil {
		return
	}
	var category models.Category
	if err := h.db.First(&category, *record.CategoryID).Error; err == nil {
		record.Category = &category
	}
}

func parseListParams(c *fiber.Ctx) (*services.RecordListParams, string) {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	params := services.RecordListParams{
		Search:    c.Query("search"),
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sortBy", "createdAt"),
		SortOrder: c.Query("sortOrder", "desc"),
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		s := models.RecordStatus(status)
		if !s.IsValid() {
			return nil, "status must be ACTIVE, PENDING, COMPLETED, or ARCHIVED"
		}
		params.Status = s
	}
	if priority := strings.TrimSpace(c.Query("priority")); priority != "" {
		p := models.RecordPriority(priority)
		if !p.IsValid() {
			return nil, "priority must be LOW, MEDIUM, HIGH, or URGENT"
		}
		params.Priority = p
	}
	if categoryID := strings.TrimSpace(c.Query("categoryId")); categoryID != "" {
		id, err := strconv.ParseUint(categoryID, 10, 64)
		if err != nil {
			return nil, "categoryId must be a number"
		}
		cid := uint(id)
		params.CategoryID = &cid
	}

	return &params, ""
}
