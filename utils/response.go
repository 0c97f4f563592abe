package utils

import "github.com/gofiber/fiber/v2"

// APIResponse defines the common structure returned by the API.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// PaginationMeta describes one page of a filtered collection. Total is the
// filtered count, not the table size.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type PaginatedData struct {
	Records    interface{}    `json:"records"`
	Pagination PaginationMeta `json:"pagination"`
}

// SuccessResponse sends a successful JSON response with the provided status
// code, message and data.
func SuccessResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	if statusCode == 0 {
		statusCode = fiber.StatusOK
	}

	response := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}

	return c.Status(statusCode).JSON(response)
}

// ErrorResponse sends an error JSON response with the provided status code,
// message and error details.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, errDetail interface{}) error {
	if statusCode == 0 {
		statusCode = fiber.StatusInternalServerError
	}

	response := APIResponse{
		Status:  "error",
		Message: message,
		Errors:  errDetail,
	}

	return c.Status(statusCode).JSON(response)
}

// PaginatedResponse sends a page of records together with its metadata.
func PaginatedResponse(c *fiber.Ctx, statusCode int, message string, records interface{}, meta PaginationMeta) error {
	return SuccessResponse(c, statusCode, message, PaginatedData{
		Records:    records,
		Pagination: meta,
	})
}
