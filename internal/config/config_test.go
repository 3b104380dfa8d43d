package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_PATH", "PORT", "HORIZON_START", "HORIZON_END", "HOLIDAYS", "HOLIDAY_DURATIONS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./roster.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), cfg.HorizonStart)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), cfg.HorizonEnd)
	assert.Equal(t, []string{"9/4", "23/4", "1/5", "19/5", "15/6", "15/7", "30/8", "29/10"}, cfg.Holidays)
	assert.Equal(t, map[string]float64{"9/4": 3.5, "15/6": 4.5}, cfg.HolidayDurations)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("HORIZON_START", "2025-01-01")
	t.Setenv("HORIZON_END", "2025-07-01")
	t.Setenv("HOLIDAYS", "1/1, 23/4")
	t.Setenv("HOLIDAY_DURATIONS", "1/1=1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2025, cfg.HorizonStart.Year())
	assert.Equal(t, time.July, cfg.HorizonEnd.Month())
	assert.Equal(t, []string{"1/1", "23/4"}, cfg.Holidays)
	assert.Equal(t, map[string]float64{"1/1": 1}, cfg.HolidayDurations)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "Should reject a malformed start", env: map[string]string{"HORIZON_START": "01/02/2024"}},
		{name: "Should reject a malformed end", env: map[string]string{"HORIZON_END": "tomorrow"}},
		{name: "Should reject a duration without value", env: map[string]string{"HOLIDAY_DURATIONS": "9/4"}},
		{name: "Should reject a non numeric duration", env: map[string]string{"HOLIDAY_DURATIONS": "9/4=long"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseHolidays(t *testing.T) {
	assert.Equal(t, []string{"9/4", "1/5"}, ParseHolidays(" 9/4 ,, 1/5,"))
	assert.Nil(t, ParseHolidays(""))
}
