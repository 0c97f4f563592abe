package handlers

import (
	recorddto "github.com/officialsayandeeppaul/RecordHub/dto/records"
	"github.com/officialsayandeeppaul/RecordHub/middleware"
	"github.com/officialsayandeeppaul/RecordHub/services"
	"github.com/officialsayandeeppaul/RecordHub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	query *services.RecordQueryService
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{query: services.NewRecordQueryService(db)}
}

type dashboardResponse struct {
	Overview         services.DashboardOverview   `json:"overview"`
	RecentRecords    []recorddto.RecordResponse   `json:"recentRecords"`
	UpcomingDueDates []services.UpcomingDueRecord `json:"upcomingDueDates"`
	Charts           services.DashboardCharts     `json:"charts"`
}

// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	stats, err := h.query.Stats(c.Context(), ownerID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to compute dashboard stats", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "dashboard stats retrieved successfully", dashboardResponse{
		Overview:         stats.Overview,
		RecentRecords:    recorddto.NewRecordResponses(stats.RecentRecords),
		UpcomingDueDates: stats.UpcomingDueDates,
		Charts:           stats.Charts,
	})
}
