package roster

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHolidayCalendar_Expand(t *testing.T) {
	type args struct {
		holidays  []string
		durations map[string]float64
		year      int
	}
	tests := []struct {
		name    string
		args    args
		want    []time.Time
		wantErr error
	}{
		{
			name: "Should add floor(duration) extra days after the holiday",
			args: args{
				holidays:  []string{"9/4"},
				durations: map[string]float64{"9/4": 3.5},
				year:      2024,
			},
			want: []time.Time{date(2024, 4, 9), date(2024, 4, 10), date(2024, 4, 11), date(2024, 4, 12)},
		},
		{
			name: "Should expand single day holidays without duration",
			args: args{
				holidays: []string{"23/4", "1/5"},
				year:     2024,
			},
			want: []time.Time{date(2024, 4, 23), date(2024, 5, 1)},
		},
		{
			name: "Should merge overlapping extensions",
			args: args{
				holidays:  []string{"15/6", "16/6"},
				durations: map[string]float64{"15/6": 2},
				year:      2024,
			},
			want: []time.Time{date(2024, 6, 15), date(2024, 6, 16), date(2024, 6, 17)},
		},
		{
			name: "Should cross month boundaries",
			args: args{
				holidays:  []string{"30/8"},
				durations: map[string]float64{"30/8": 2.9},
				year:      2024,
			},
			want: []time.Time{date(2024, 8, 30), date(2024, 8, 31), date(2024, 9, 1)},
		},
		{
			name: "Should ignore negative durations",
			args: args{
				holidays:  []string{"1/5"},
				durations: map[string]float64{"1/5": -1.5},
				year:      2024,
			},
			want: []time.Time{date(2024, 5, 1)},
		},
		{
			name: "Should accept leading zeros",
			args: args{
				holidays: []string{"09/04"},
				year:     2024,
			},
			want: []time.Time{date(2024, 4, 9)},
		},
		{
			name: "Should accept 29/2 in a leap year",
			args: args{
				holidays: []string{"29/2"},
				year:     2024,
			},
			want: []time.Time{date(2024, 2, 29)},
		},
		{
			name:    "Should reject 30/2",
			args:    args{holidays: []string{"30/2"}, year: 2024},
			wantErr: ErrInvalidHolidaySpec,
		},
		{
			name:    "Should reject 29/2 outside a leap year",
			args:    args{holidays: []string{"29/2"}, year: 2023},
			wantErr: ErrInvalidHolidaySpec,
		},
		{
			name:    "Should reject month 13",
			args:    args{holidays: []string{"1/13"}, year: 2024},
			wantErr: ErrInvalidHolidaySpec,
		},
		{
			name:    "Should reject day zero",
			args:    args{holidays: []string{"0/1"}, year: 2024},
			wantErr: ErrInvalidHolidaySpec,
		},
		{
			name:    "Should reject text without separator",
			args:    args{holidays: []string{"april"}, year: 2024},
			wantErr: ErrInvalidHolidaySpec,
		},
		{
			name:    "Should reject non numeric parts",
			args:    args{holidays: []string{"a/b"}, year: 2024},
			wantErr: ErrInvalidHolidaySpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewHolidayCalendar(tt.args.holidays, tt.args.durations).Expand(tt.args.year)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "unexpected error: %v", err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for _, d := range tt.want {
				assert.True(t, got.Contains(d), "expected %s to be excluded", d.Format("2006-01-02"))
			}
		})
	}
}

func TestHolidayCalendar_Expand_OnlyGivenYear(t *testing.T) {
	got, err := NewHolidayCalendar([]string{"1/1"}, nil).Expand(2024)
	require.NoError(t, err)

	assert.True(t, got.Contains(date(2024, 1, 1)))
	assert.False(t, got.Contains(date(2025, 1, 1)))
}

func TestDateSet_ContainsIgnoresTimeOfDay(t *testing.T) {
	s := make(DateSet)
	s.Add(time.Date(2024, 4, 9, 17, 30, 0, 0, time.UTC))

	assert.True(t, s.Contains(date(2024, 4, 9)))
	assert.True(t, s.Contains(time.Date(2024, 4, 9, 8, 0, 0, 0, time.UTC)))
	assert.False(t, s.Contains(date(2024, 4, 10)))
}
