package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officialsayandeeppaul/RecordHub/models"
)

type reminderRecorder struct {
	sent     []string
	failFor  string
	linkSeen string
}

func (m *reminderRecorder) SendDueDateReminderEmail(toEmail, name, recordTitle, dueDate, recordsLink string) error {
	if recordTitle == m.failFor {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, recordTitle)
	m.linkSeen = recordsLink
	return nil
}

func TestSendDueDateReminders(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	now := time.Now()

	seedRecord(t, db, models.Record{
		Title: "Due soon", Status: models.StatusActive,
		Priority: models.PriorityHigh, OwnerID: user.ID,
		DueDate: ptrTime(now.Add(3 * time.Hour)),
	})
	// Completed records never remind.
	seedRecord(t, db, models.Record{
		Title: "Already done", Status: models.StatusCompleted,
		Priority: models.PriorityHigh, OwnerID: user.ID,
		DueDate: ptrTime(now.Add(3 * time.Hour)),
	})
	// Outside the 24h window.
	seedRecord(t, db, models.Record{
		Title: "Next week", Status: models.StatusActive,
		Priority: models.PriorityLow, OwnerID: user.ID,
		DueDate: ptrTime(now.Add(5 * 24 * time.Hour)),
	})
	seedRecord(t, db, models.Record{
		Title: "No due date", Status: models.StatusActive,
		Priority: models.PriorityLow, OwnerID: user.ID,
	})

	mailer := &reminderRecorder{}
	svc := NewReminderService(db, mailer, "http://localhost:3000/")

	sent, err := svc.SendDueDateReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"Due soon"}, mailer.sent)
	assert.Equal(t, "http://localhost:3000/records", mailer.linkSeen)
}

func TestSendDueDateRemindersContinuesPastFailures(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	now := time.Now()

	seedRecord(t, db, models.Record{
		Title: "First", Status: models.StatusActive,
		Priority: models.PriorityHigh, OwnerID: user.ID,
		DueDate: ptrTime(now.Add(2 * time.Hour)),
	})
	seedRecord(t, db, models.Record{
		Title: "Second", Status: models.StatusActive,
		Priority: models.PriorityHigh, OwnerID: user.ID,
		DueDate: ptrTime(now.Add(4 * time.Hour)),
	})

	mailer := &reminderRecorder{failFor: "First"}
	svc := NewReminderService(db, mailer, "http://localhost:3000")

	sent, err := svc.SendDueDateReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"Second"}, mailer.sent)
}
