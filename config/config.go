package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Scheduler specifics
	GoogleCalendar GoogleCalendarConfig
	Scheduler      SchedulerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsPath   string
	CalendarIDs       []string
	PrimaryCalendarID string
	Timezone          string
}

type SchedulerConfig struct {
	DefaultMaxResults int64
	RateLimitPerMin   int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.PrimaryCalendarID = viper.GetString("google_calendar.primary_calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Split calendar IDs since viper might not parse array seamlessly from env
	var ids []string
	if rawIDs := viper.GetString("google_calendar.calendar_ids"); rawIDs != "" {
		for _, id := range strings.Split(rawIDs, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		ids = viper.GetStringSlice("google_calendar.calendar_ids")
	}
	cfg.GoogleCalendar.CalendarIDs = ids

	// If primary not set, default to the first configured calendar
	if cfg.GoogleCalendar.PrimaryCalendarID == "" && len(cfg.GoogleCalendar.CalendarIDs) > 0 {
		cfg.GoogleCalendar.PrimaryCalendarID = cfg.GoogleCalendar.CalendarIDs[0]
	}

	// Scheduler
	cfg.Scheduler.DefaultMaxResults = viper.GetInt64("scheduler.default_max_results")
	cfg.Scheduler.RateLimitPerMin = viper.GetInt("scheduler.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google_calendar.timezone", "America/Sao_Paulo")
	viper.SetDefault("scheduler.default_max_results", 7)
	viper.SetDefault("scheduler.rate_limit_per_min", 60)
}
