package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/officialsayandeeppaul/RecordHub/models"
)

func seedRecord(t *testing.T, db *gorm.DB, r models.Record) models.Record {
	t.Helper()
	require.NoError(t, db.Create(&r).Error)
	return r
}

func ptrTime(v time.Time) *time.Time { return &v }
func ptrUint(v uint) *uint           { return &v }

// seedQueryFixture creates two owners with a known spread of records so
// that scoping, filters and aggregates all have something to bite on.
func seedQueryFixture(t *testing.T, db *gorm.DB) (owner uint, other uint, workCat models.Category) {
	ownerUser := createTestUser(t, db, "owner@example.com")
	otherUser := createTestUser(t, db, "other@example.com")

	workCat = models.Category{Name: "Work", Color: "#ff0000", Icon: "briefcase", OwnerID: ownerUser.ID}
	require.NoError(t, db.Create(&workCat).Error)
	emptyCat := models.Category{Name: "Empty", Color: "#00ff00", Icon: "folder", OwnerID: ownerUser.ID}
	require.NoError(t, db.Create(&emptyCat).Error)

	now := time.Now()

	seedRecord(t, db, models.Record{
		Title: "Quarterly report", Description: "finance numbers",
		Status: models.StatusActive, Priority: models.PriorityUrgent,
		Tags: []string{"Work", "Finance"}, CategoryID: ptrUint(workCat.ID),
		DueDate: ptrTime(now.Add(2 * 24 * time.Hour)), OwnerID: ownerUser.ID,
	})
	seedRecord(t, db, models.Record{
		Title: "Grocery list", Description: "weekend shopping",
		Status: models.StatusPending, Priority: models.PriorityLow,
		Tags: []string{"home"}, OwnerID: ownerUser.ID,
	})
	seedRecord(t, db, models.Record{
		Title: "Workshop notes", Description: "from the conference",
		Status: models.StatusCompleted, Priority: models.PriorityHigh,
		CategoryID: ptrUint(workCat.ID),
		DueDate:    ptrTime(now.Add(3 * 24 * time.Hour)), OwnerID: ownerUser.ID,
	})
	seedRecord(t, db, models.Record{
		Title: "Old archive", Description: "dusty",
		Status: models.StatusArchived, Priority: models.PriorityMedium,
		OwnerID: ownerUser.ID,
	})

	// A different owner's record must never leak into results.
	seedRecord(t, db, models.Record{
		Title: "Workout plan", Status: models.StatusActive,
		Priority: models.PriorityUrgent, OwnerID: otherUser.ID,
	})

	return ownerUser.ID, otherUser.ID, workCat
}

func TestListScopesToOwner(t *testing.T) {
	db := openTestDB(t)
	ownerID, otherID, _ := seedQueryFixture(t, db)
	svc := NewRecordQueryService(db)
	ctx := context.Background()

	page, err := svc.List(ctx, ownerID, RecordListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, page.Total)
	for _, r := range page.Records {
		assert.Equal(t, ownerID, r.OwnerID)
	}

	otherPage, err := svc.List(ctx, otherID, RecordListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, otherPage.Total)
}

func TestListPaginationRoundsUp(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	for i := 0; i < 7; i++ {
		seedRecord(t, db, models.Record{
			Title: "record", Status: models.StatusActive,
			Priority: models.PriorityMedium, OwnerID: user.ID,
		})
	}
	svc := NewRecordQueryService(db)
	ctx := context.Background()

	page, err := svc.List(ctx, user.ID, RecordListParams{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, page.Records, 3)
	assert.EqualValues(t, 7, page.Total)
	assert.Equal(t, 3, page.TotalPages)

	last, err := svc.List(ctx, user.ID, RecordListParams{Page: 3, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, last.Records, 1)

	// Past the end: empty slice, metadata intact.
	past, err := svc.List(ctx, user.ID, RecordListParams{Page: 9, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, past.Records)
	assert.Equal(t, 9, past.Page)
	assert.EqualValues(t, 7, past.Total)
	assert.Equal(t, 3, past.TotalPages)
}

func TestListClampsPageAndLimit(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	seedRecord(t, db, models.Record{
		Title: "only one", Status: models.StatusActive,
		Priority: models.PriorityMedium, OwnerID: user.ID,
	})
	svc := NewRecordQueryService(db)
	ctx := context.Background()

	page, err := svc.List(ctx, user.ID, RecordListParams{Page: -3, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageLimit, page.Limit)

	huge, err := svc.List(ctx, user.ID, RecordListParams{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, maxPageLimit, huge.Limit)
}

func TestListFiltersAreANDed(t *testing.T) {
	db := openTestDB(t)
	ownerID, _, workCat := seedQueryFixture(t, db)
	svc := NewRecordQueryService(db)
	ctx := context.Background()

	page, err := svc.List(ctx, ownerID, RecordListParams{
		Status:   models.StatusActive,
		Priority: models.PriorityUrgent,
	})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "Quarterly report", page.Records[0].Title)

	byCat, err := svc.List(ctx, ownerID, RecordListParams{CategoryID: &workCat.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, byCat.Total)

	none, err := svc.List(ctx, ownerID, RecordListParams{
		Status:     models.StatusPending,
		CategoryID: &workCat.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, none.Records)
}

func TestListSearchMatchesTitleDescriptionAndTags(t *testing.T) {
	db := openTestDB(t)
	ownerID, _, _ := seedQueryFixture(t, db)
	svc := NewRecordQueryService(db)
	ctx := context.Background()

	// "work" substring-matches the titles of "Workshop notes" and tag-matches
	// "Quarterly report" (its "Work" tag) case-insensitively.
	page, err := svc.List(ctx, ownerID, RecordListParams{Search: "work"})
	require.NoError(t, err)
	titles := make([]string, 0, len(page.Records))
	for _, r := range page.Records {
		titles = append(titles, r.Title)
	}
	assert.ElementsMatch(t, []string{"Quarterly report", "Workshop notes"}, titles)

	// Tag matching is exact membership: "fin" is a substring of the
	// "Finance" tag but matches only via the description, not the tag.
	page, err = svc.List(ctx, ownerID, RecordListParams{Search: "financ"})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "Quarterly report", page.Records[0].Title)

	page, err = svc.List(ctx, ownerID, RecordListParams{Search: "HOME"})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "Grocery list", page.Records[0].Title)
}

func TestListSortWhitelist(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	seedRecord(t, db, models.Record{Title: "bravo", Status: models.StatusActive, Priority: models.PriorityLow, OwnerID: user.ID})
	seedRecord(t, db, models.Record{Title: "alpha", Status: models.StatusActive, Priority: models.PriorityLow, OwnerID: user.ID})
	svc := NewRecordQueryService(db)
	ctx := context.Background()

	page, err := svc.List(ctx, user.ID, RecordListParams{SortBy: "title", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, page.Records, 2)
	assert.Equal(t, "alpha", page.Records[0].Title)

	// Anything outside the whitelist falls back to created_at DESC rather
	// than reaching the database.
	_, err = svc.List(ctx, user.ID, RecordListParams{SortBy: "title; DROP TABLE records"})
	assert.NoError(t, err)
}

func TestBuildOrderClause(t *testing.T) {
	assert.Equal(t, "due_date ASC", buildOrderClause("dueDate", "asc"))
	assert.Equal(t, "title DESC", buildOrderClause("title", "descending-nonsense"))
	assert.Equal(t, "created_at DESC", buildOrderClause("evil_column", ""))
	assert.Equal(t, "created_at DESC", buildOrderClause("", ""))
}

func TestStatsOverviewAndCharts(t *testing.T) {
	db := openTestDB(t)
	ownerID, _, _ := seedQueryFixture(t, db)
	svc := NewRecordQueryService(db)

	stats, err := svc.Stats(context.Background(), ownerID)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.Overview.TotalRecords)
	assert.EqualValues(t, 1, stats.Overview.ActiveRecords)
	assert.EqualValues(t, 1, stats.Overview.CompletedRecords)
	assert.EqualValues(t, 1, stats.Overview.PendingRecords)
	assert.EqualValues(t, 1, stats.Overview.ArchivedRecords)
	assert.EqualValues(t, 1, stats.Overview.UrgentRecords)
	assert.EqualValues(t, 1, stats.Overview.HighPriorityRecords)
	assert.EqualValues(t, 2, stats.Overview.TotalCategories)

	assert.Len(t, stats.RecentRecords, 4)

	// "Quarterly report" is due in 2 days; the completed "Workshop notes"
	// is due in 3 but must be excluded.
	require.Len(t, stats.UpcomingDueDates, 1)
	assert.Equal(t, "Quarterly report", stats.UpcomingDueDates[0].Title)
	assert.Equal(t, models.PriorityUrgent, stats.UpcomingDueDates[0].Priority)

	// Charts include a zero-count category.
	byName := map[string]int64{}
	for _, entry := range stats.Charts.RecordsByCategory {
		byName[entry.Name] = entry.Count
	}
	assert.EqualValues(t, 2, byName["Work"])
	assert.EqualValues(t, 0, byName["Empty"])

	statusCounts := map[models.RecordStatus]int64{}
	for _, entry := range stats.Charts.RecordsByStatus {
		statusCounts[entry.Status] = entry.Count
	}
	assert.EqualValues(t, 1, statusCounts[models.StatusActive])
	assert.EqualValues(t, 1, statusCounts[models.StatusArchived])

	priorityCounts := map[models.RecordPriority]int64{}
	for _, entry := range stats.Charts.RecordsByPriority {
		priorityCounts[entry.Priority] = entry.Count
	}
	assert.EqualValues(t, 1, priorityCounts[models.PriorityUrgent])
	assert.EqualValues(t, 1, priorityCounts[models.PriorityLow])
}

func TestStatsRecentRecordsCappedAtFive(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	for i := 0; i < 8; i++ {
		seedRecord(t, db, models.Record{
			Title: "record", Status: models.StatusActive,
			Priority: models.PriorityMedium, OwnerID: user.ID,
		})
	}
	svc := NewRecordQueryService(db)

	stats, err := svc.Stats(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, stats.RecentRecords, recentRecordsLimit)
	assert.EqualValues(t, 8, stats.Overview.TotalRecords)
}
