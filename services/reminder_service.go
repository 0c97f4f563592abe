package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/officialsayandeeppaul/RecordHub/models"

	"gorm.io/gorm"
)

// reminderWindow is how far ahead of the due date the daily job notifies.
const reminderWindow = 24 * time.Hour

type ReminderMailer interface {
	SendDueDateReminderEmail(toEmail, name, recordTitle, dueDate, recordsLink string) error
}

// ReminderService emails owners about records coming due. It is driven by
// the cron scheduler, not by request handlers.
type ReminderService struct {
	db      *gorm.DB
	mailer  ReminderMailer
	baseURL string
}

func NewReminderService(db *gorm.DB, mailer ReminderMailer, baseURL string) *ReminderService {
	return &ReminderService{db: db, mailer: mailer, baseURL: baseURL}
}

// SendDueDateReminders notifies the owner of every non-completed record due
// within the next 24 hours. One failed email does not stop the batch.
func (s *ReminderService) SendDueDateReminders(ctx context.Context) (int, error) {
	now := time.Now()

	var due []models.Record
	if err := s.db.WithContext(ctx).
		Preload("Owner").
		Where("due_date IS NOT NULL AND due_date >= ? AND due_date <= ?", now, now.Add(reminderWindow)).
		Where("status <> ?", models.StatusCompleted).
		Order("due_date ASC").
		Find(&due).Error; err != nil {
		return 0, err
	}

	recordsLink := strings.TrimRight(s.baseURL, "/") + "/records"

	sent := 0
	for i := range due {
		record := &due[i]
		if record.Owner.Email == "" || record.DueDate == nil {
			continue
		}

		dueDate := record.DueDate.Format("January 2, 2006")
		if err := s.mailer.SendDueDateReminderEmail(record.Owner.Email, record.Owner.Name, record.Title, dueDate, recordsLink); err != nil {
			log.Printf("due date reminder for record %d to %s failed: %v", record.ID, record.Owner.Email, err)
			continue
		}
		sent++
	}

	return sent, nil
}
