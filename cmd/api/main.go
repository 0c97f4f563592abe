package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/officialsayandeeppaul/RecordHub/config"
	"github.com/officialsayandeeppaul/RecordHub/handlers"
	"github.com/officialsayandeeppaul/RecordHub/routes"
	"github.com/officialsayandeeppaul/RecordHub/services"
	"github.com/officialsayandeeppaul/RecordHub/utils/mailer"
)

func main() {
	config.LoadEnv()
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db := config.ConnectDB()
	appCfg := config.LoadAppConfig()
	mailClient := mailer.NewClient(config.LoadEmailConfig())

	resetService := services.NewPasswordResetService(db, mailClient, appCfg.BaseURL, appCfg.PasswordResetPath)
	reminderService := services.NewReminderService(db, mailClient, appCfg.BaseURL)

	scheduler := services.NewSchedulerService(time.Local)
	_, err := scheduler.ScheduleDaily(appCfg.ReminderTime, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		sent, err := reminderService.SendDueDateReminders(ctx)
		if err != nil {
			log.Printf("due-date reminder run failed: %v", err)
			return
		}
		log.Printf("due-date reminders sent: %d", sent)
	})
	if err != nil {
		log.Fatalf("failed to schedule reminder job: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := fiber.New()
	routes.Register(app, routes.Handlers{
		Auth:       handlers.NewAuthHandler(db, resetService, mailClient, appCfg),
		Records:    handlers.NewRecordHandler(db),
		Categories: handlers.NewCategoryHandler(db),
		Dashboard:  handlers.NewDashboardHandler(db),
		Settings:   handlers.NewSettingsHandler(db),
	})

	log.Printf("🚀 API running on %s", appCfg.ListenAddr)
	if err := app.Listen(appCfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
