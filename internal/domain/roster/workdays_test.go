package roster

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingDays(t *testing.T) {
	t.Run("Should enumerate [start, end) including weekends", func(t *testing.T) {
		// 2024-02-03 and 2024-02-04 are a weekend
		got, err := WorkingDays(date(2024, 2, 1), date(2024, 2, 6), nil)
		require.NoError(t, err)

		assert.Equal(t, []time.Time{
			date(2024, 2, 1),
			date(2024, 2, 2),
			date(2024, 2, 3),
			date(2024, 2, 4),
			date(2024, 2, 5),
		}, got)
	})

	t.Run("Should drop excluded days", func(t *testing.T) {
		excluded := make(DateSet)
		excluded.Add(date(2024, 2, 2))
		excluded.Add(date(2024, 2, 4))

		got, err := WorkingDays(date(2024, 2, 1), date(2024, 2, 5), excluded)
		require.NoError(t, err)

		assert.Equal(t, []time.Time{date(2024, 2, 1), date(2024, 2, 3)}, got)
	})

	t.Run("Should return an empty sequence when every day is excluded", func(t *testing.T) {
		excluded := make(DateSet)
		excluded.Add(date(2024, 2, 1))

		got, err := WorkingDays(date(2024, 2, 1), date(2024, 2, 2), excluded)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Should be restartable", func(t *testing.T) {
		first, err := WorkingDays(date(2024, 2, 1), date(2024, 3, 1), nil)
		require.NoError(t, err)
		second, err := WorkingDays(date(2024, 2, 1), date(2024, 3, 1), nil)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, first, 29)
	})

	t.Run("Should reject equal bounds", func(t *testing.T) {
		_, err := WorkingDays(date(2024, 2, 1), date(2024, 2, 1), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidDateRange))
	})

	t.Run("Should reject end before start", func(t *testing.T) {
		_, err := WorkingDays(date(2024, 2, 5), date(2024, 2, 1), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidDateRange))
	})
}
