package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/officialsayandeeppaul/RecordHub/handlers"
	"github.com/officialsayandeeppaul/RecordHub/middleware"
)

// Handlers bundles every route handler the API mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Records    *handlers.RecordHandler
	Categories *handlers.CategoryHandler
	Dashboard  *handlers.DashboardHandler
	Settings   *handlers.SettingsHandler
}

func Register(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	// Auth (public)
	api.Post("/auth/register", h.Auth.Register)
	api.Post("/auth/login", h.Auth.Login)
	api.Post("/auth/refresh", h.Auth.RefreshToken)
	api.Post("/auth/forgot-password", h.Auth.RequestPasswordReset)
	api.Post("/auth/reset-password", h.Auth.ResetPassword)

	protected := api.Group("", middleware.RequireAuth())

	// Records CRUD + listing
	protected.Post("/records", h.Records.CreateRecord)
	protected.Get("/records", h.Records.ListRecords) // ?status=&priority=&categoryId=&search=&sortBy=&sortOrder=&page=&limit=
	protected.Get("/records/:id", h.Records.GetRecordByID)
	protected.Put("/records/:id", h.Records.UpdateRecord)
	protected.Delete("/records/:id", h.Records.DeleteRecord)

	// Categories CRUD
	protected.Post("/categories", h.Categories.CreateCategory)
	protected.Get("/categories", h.Categories.ListCategories)
	protected.Get("/categories/:id", h.Categories.GetCategoryByID)
	protected.Put("/categories/:id", h.Categories.UpdateCategory)
	protected.Delete("/categories/:id", h.Categories.DeleteCategory)

	// Dashboard
	protected.Get("/dashboard/stats", h.Dashboard.GetStats)

	// Profile
	protected.Get("/profile", h.Settings.GetMyProfile)
	protected.Put("/profile", h.Settings.UpdateMyProfile)
	protected.Put("/profile/password", h.Settings.ChangePassword)
}
