package config

import "os"

type AppConfig struct {
	// BaseURL is the public origin embedded in emailed links.
	BaseURL string
	// PasswordResetPath is appended to BaseURL when building reset links.
	PasswordResetPath string
	// ReminderTime is the local HH:MM at which the due-date reminder job runs.
	ReminderTime string
	ListenAddr   string
}

func LoadAppConfig() AppConfig {
	cfg := AppConfig{
		BaseURL:           os.Getenv("APP_BASE_URL"),
		PasswordResetPath: os.Getenv("PASSWORD_RESET_PATH"),
		ReminderTime:      os.Getenv("REMINDER_TIME"),
		ListenAddr:        os.Getenv("LISTEN_ADDR"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.PasswordResetPath == "" {
		cfg.PasswordResetPath = "/auth/reset-password"
	}
	if cfg.ReminderTime == "" {
		cfg.ReminderTime = "08:00"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	return cfg
}
