package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/duty-roster/internal/database"
	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/diegoclair/duty-roster/migrator/sqlite"
	"github.com/diegoclair/duty-roster/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStoredRoster(t *testing.T, names ...string) (*rosterService, int64) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "roster.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, sqlite.Migrate(db.DB()))

	dm := database.NewInstance(db)
	ctrl := gomock.NewController(t)
	s := newRoster(dm, mocks.NewMockSlackClient(ctrl), HolidayConfig{})

	pool := &entity.Pool{Name: "regen", NotificationTime: "09:00", IsEnabled: true}
	require.NoError(t, dm.Pool().Create(pool))

	for _, name := range names {
		require.NoError(t, s.AddProfessionalByName(pool.ID, name))
	}

	return s, pool.ID
}

// requireRested fails when someone holds two assigned duties closer than the rest gap
func requireRested(t *testing.T, duties []*entity.Duty) {
	t.Helper()

	last := make(map[string]time.Time)
	for _, d := range duties {
		if !d.Assigned() {
			continue
		}
		if prev, ok := last[d.ProfessionalName]; ok {
			days := int(d.DutyDate.Sub(prev).Hours() / 24)
			require.GreaterOrEqualf(t, days, domain.MinRestDays, "%s on %s and %s", d.ProfessionalName,
				prev.Format(domain.DateLayout), d.DutyDate.Format(domain.DateLayout))
		}
		last[d.ProfessionalName] = d.DutyDate
	}
}

func Test_rosterService_GenerateSchedule_OverlappingRanges(t *testing.T) {
	ctx := context.Background()
	s, poolID := newStoredRoster(t, "A", "B")

	_, err := s.GenerateSchedule(ctx, poolID, day(2024, 2, 1), day(2024, 2, 4))
	require.NoError(t, err)

	stored, err := s.dm.Duty().ListRange(poolID, day(2024, 1, 1), day(2024, 3, 1))
	require.NoError(t, err)
	require.NotEmpty(t, stored)
	assert.Equal(t, day(2024, 2, 1), stored[0].DutyDate)
	assert.Equal(t, "A", stored[0].ProfessionalName)
	assert.Equal(t, "B", stored[1].ProfessionalName)

	t.Run("Should refuse a range starting right after stored duties", func(t *testing.T) {
		_, err := s.GenerateSchedule(ctx, poolID, day(2024, 2, 2), day(2024, 2, 7))
		assert.ErrorIs(t, err, ErrRestGapConflict)

		after, err := s.dm.Duty().ListRange(poolID, day(2024, 1, 1), day(2024, 3, 1))
		require.NoError(t, err)
		require.Len(t, after, len(stored))
		for i := range stored {
			assert.Equal(t, stored[i].DutyDate, after[i].DutyDate)
			assert.Equal(t, stored[i].ProfessionalName, after[i].ProfessionalName)
		}
	})

	t.Run("Should extend once the rest gap has passed", func(t *testing.T) {
		_, err := s.GenerateSchedule(ctx, poolID, day(2024, 2, 4), day(2024, 2, 9))
		require.NoError(t, err)

		duties, err := s.dm.Duty().ListRange(poolID, day(2024, 2, 1), day(2024, 2, 9))
		require.NoError(t, err)
		requireRested(t, duties)
	})

	t.Run("Should regenerate a range that covers the stored duties", func(t *testing.T) {
		_, err := s.GenerateSchedule(ctx, poolID, day(2024, 2, 1), day(2024, 2, 9))
		require.NoError(t, err)

		duties, err := s.dm.Duty().ListRange(poolID, day(2024, 2, 1), day(2024, 2, 9))
		require.NoError(t, err)
		require.NotEmpty(t, duties)
		requireRested(t, duties)
	})
}
