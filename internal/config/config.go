package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
)

const (
	defaultHolidays         = "9/4,23/4,1/5,19/5,15/6,15/7,30/8,29/10"
	defaultHolidayDurations = "9/4=3.5,15/6=4.5"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	HorizonStart       time.Time
	HorizonEnd         time.Time
	Holidays           []string
	HolidayDurations   map[string]float64
}

func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./roster.db"),
		Port:               getEnv("PORT", "3000"),
		Holidays:           ParseHolidays(getEnv("HOLIDAYS", defaultHolidays)),
	}

	var err error
	cfg.HorizonStart, err = time.Parse(domain.DateLayout, getEnv("HORIZON_START", "2024-02-01"))
	if err != nil {
		return nil, fmt.Errorf("invalid HORIZON_START: %w", err)
	}

	cfg.HorizonEnd, err = time.Parse(domain.DateLayout, getEnv("HORIZON_END", "2025-02-01"))
	if err != nil {
		return nil, fmt.Errorf("invalid HORIZON_END: %w", err)
	}

	cfg.HolidayDurations, err = ParseHolidayDurations(getEnv("HOLIDAY_DURATIONS", defaultHolidayDurations))
	if err != nil {
		return nil, fmt.Errorf("invalid HOLIDAY_DURATIONS: %w", err)
	}

	return cfg, nil
}

// ParseHolidays splits a comma separated list of day/month holidays
func ParseHolidays(value string) []string {
	var holidays []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			holidays = append(holidays, part)
		}
	}
	return holidays
}

// ParseHolidayDurations reads "day/month=days" pairs, e.g. "9/4=3.5,15/6=4.5"
func ParseHolidayDurations(value string) (map[string]float64, error) {
	durations := make(map[string]float64)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		holiday, days, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("expected holiday=days, got %q", part)
		}

		d, err := strconv.ParseFloat(strings.TrimSpace(days), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid duration for %q: %w", holiday, err)
		}
		durations[strings.TrimSpace(holiday)] = d
	}
	return durations, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
