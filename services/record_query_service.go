package services

import (
	"context"
	"strings"
	"time"

	"github.com/officialsayandeeppaul/RecordHub/models"

	"gorm.io/gorm"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100

	recentRecordsLimit   = 5
	upcomingDueLimit     = 5
	upcomingDueWindow    = 7 * 24 * time.Hour
	defaultSortColumn    = "created_at"
	defaultSortDirection = "DESC"
)

// sortColumns whitelists the record fields a client may sort by.
var sortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"status":      "status",
	"priority":    "priority",
	"dueDate":     "due_date",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"description": "description",
}

// RecordListParams are the parsed query parameters for a record listing.
// Zero values mean "no filter" / "use the default".
type RecordListParams struct {
	Status     models.RecordStatus
	Priority   models.RecordPriority
	CategoryID *uint
	Search     string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

type RecordPage struct {
	Records    []models.Record
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

type DashboardOverview struct {
	TotalRecords        int64 `json:"totalRecords"`
	ActiveRecords       int64 `json:"activeRecords"`
	CompletedRecords    int64 `json:"completedRecords"`
	PendingRecords      int64 `json:"pendingRecords"`
	ArchivedRecords     int64 `json:"archivedRecords"`
	UrgentRecords       int64 `json:"urgentRecords"`
	HighPriorityRecords int64 `json:"highPriorityRecords"`
	TotalCategories     int64 `json:"totalCategories"`
}

type CategoryChartEntry struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int64  `json:"count"`
}

type StatusChartEntry struct {
	Status models.RecordStatus `json:"status"`
	Count  int64               `json:"count"`
}

type PriorityChartEntry struct {
	Priority models.RecordPriority `json:"priority"`
	Count    int64                 `json:"count"`
}

type UpcomingDueRecord struct {
	ID       uint                  `json:"id"`
	Title    string                `json:"title"`
	DueDate  *time.Time            `json:"dueDate"`
	Priority models.RecordPriority `json:"priority"`
}

type DashboardCharts struct {
	RecordsByCategory []CategoryChartEntry `json:"recordsByCategory"`
	RecordsByStatus   []StatusChartEntry   `json:"recordsByStatus"`
	RecordsByPriority []PriorityChartEntry `json:"recordsByPriority"`
}

type DashboardStats struct {
	Overview         DashboardOverview
	RecentRecords    []models.Record
	UpcomingDueDates []UpcomingDueRecord
	Charts           DashboardCharts
}

// RecordQueryService builds filtered, sorted, paginated record queries and
// dashboard aggregates. Every query it issues is scoped to one owner.
type RecordQueryService struct {
	db *gorm.DB
}

func NewRecordQueryService(db *gorm.DB) *RecordQueryService {
	return &RecordQueryService{db: db}
}

// List returns one page of the owner's records. Filters are ANDed; the
// search term ORs a case-insensitive substring match on title and
// description with an exact (case-insensitive) tag membership match.
// A page past the end yields an empty slice with accurate metadata.
func (s *RecordQueryService) List(ctx context.Context, ownerID uint, params RecordListParams) (*RecordPage, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	// Explicit limit=0 clamps to the default so totalPages is always
	// well-defined.
	limit := params.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := (page - 1) * limit

	tx := s.scoped(ctx, ownerID)

	if params.Status != "" {
		tx = tx.Where("status = ?", params.Status)
	}
	if params.Priority != "" {
		tx = tx.Where("priority = ?", params.Priority)
	}
	if params.CategoryID != nil {
		tx = tx.Where("category_id = ?", *params.CategoryID)
	}
	if search := strings.TrimSpace(params.Search); search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		tagNeedle := "%," + strings.ToLower(search) + ",%"
		tx = tx.Where(
			s.db.Where("LOWER(title) LIKE ?", needle).
				Or("LOWER(description) LIKE ?", needle).
				Or("tag_index LIKE ?", tagNeedle),
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var recordsList []models.Record
	if err := tx.Order(buildOrderClause(params.SortBy, params.SortOrder)).
		Limit(limit).Offset(offset).
		Preload("Category").
		Find(&recordsList).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &RecordPage{
		Records:    recordsList,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Stats computes the dashboard snapshot for one owner as of call time.
// It reads through to the database on every call so intervening mutations
// are always visible.
func (s *RecordQueryService) Stats(ctx context.Context, ownerID uint) (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		dest *int64
		cond func(*gorm.DB) *gorm.DB
	}{
		{&stats.Overview.TotalRecords, nil},
		{&stats.Overview.ActiveRecords, byStatus(models.StatusActive)},
		{&stats.Overview.CompletedRecords, byStatus(models.StatusCompleted)},
		{&stats.Overview.PendingRecords, byStatus(models.StatusPending)},
		{&stats.Overview.ArchivedRecords, byStatus(models.StatusArchived)},
		{&stats.Overview.UrgentRecords, byPriority(models.PriorityUrgent)},
		{&stats.Overview.HighPriorityRecords, byPriority(models.PriorityHigh)},
	}
	for _, c := range counts {
		tx := s.scoped(ctx, ownerID)
		if c.cond != nil {
			tx = c.cond(tx)
		}
		if err := tx.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.WithContext(ctx).Model(&models.Category{}).
		Where("owner_id = ?", ownerID).
		Count(&stats.Overview.TotalCategories).Error; err != nil {
		return nil, err
	}

	if err := s.scoped(ctx, ownerID).
		Order("created_at DESC").
		Limit(recentRecordsLimit).
		Preload("Category").
		Find(&stats.RecentRecords).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.scoped(ctx, ownerID).
		Where("due_date IS NOT NULL AND due_date >= ? AND due_date <= ?", now, now.Add(upcomingDueWindow)).
		Where("status <> ?", models.StatusCompleted).
		Order("due_date ASC").
		Limit(upcomingDueLimit).
		Select("id", "title", "due_date", "priority").
		Scan(&stats.UpcomingDueDates).Error; err != nil {
		return nil, err
	}

	charts, err := s.charts(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	stats.Charts = *charts

	return stats, nil
}

func (s *RecordQueryService) charts(ctx context.Context, ownerID uint) (*DashboardCharts, error) {
	charts := &DashboardCharts{
		RecordsByCategory: []CategoryChartEntry{},
		RecordsByStatus:   []StatusChartEntry{},
		RecordsByPriority: []PriorityChartEntry{},
	}

	if err := s.db.WithContext(ctx).Model(&models.Category{}).
		Select("categories.name AS name, categories.color AS color, COUNT(records.id) AS count").
		Joins("LEFT JOIN records ON records.category_id = categories.id").
		Where("categories.owner_id = ?", ownerID).
		Group("categories.id").
		Order("categories.name ASC").
		Scan(&charts.RecordsByCategory).Error; err != nil {
		return nil, err
	}

	if err := s.scoped(ctx, ownerID).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&charts.RecordsByStatus).Error; err != nil {
		return nil, err
	}

	if err := s.scoped(ctx, ownerID).
		Select("priority, COUNT(*) AS count").
		Group("priority").
		Scan(&charts.RecordsByPriority).Error; err != nil {
		return nil, err
	}

	return charts, nil
}

func (s *RecordQueryService) scoped(ctx context.Context, ownerID uint) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Record{}).Where("owner_id = ?", ownerID)
}

func byStatus(status models.RecordStatus) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB { return tx.Where("status = ?", status) }
}

func byPriority(priority models.RecordPriority) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB { return tx.Where("priority = ?", priority) }
}

func buildOrderClause(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = defaultSortColumn
	}

	direction := defaultSortDirection
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}

	return column + " " + direction
}
