package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NishantGawd/sj-fitness/internal/service"
)

func TestPlanFor(t *testing.T) {
	t.Run("known durations", func(t *testing.T) {
		cases := map[string]struct {
			amount int64
			months int
		}{
			"1m":  {300000, 1},
			"3m":  {600000, 3},
			"6m":  {900000, 6},
			"12m": {1300000, 12},
		}

		for duration, want := range cases {
			cfg, err := service.PlanFor(duration)
			require.NoError(t, err, duration)
			assert.Equal(t, want.amount, cfg.Amount, duration)
			assert.Equal(t, want.months, cfg.Months, duration)
			// Single future charge, never open-ended billing.
			assert.Equal(t, 1, cfg.TotalCount, duration)
		}
	})

	t.Run("unknown duration", func(t *testing.T) {
		_, err := service.PlanFor("2w")
		assert.ErrorIs(t, err, service.ErrInvalidDuration)
	})
}

func TestEndsAt(t *testing.T) {
	start := time.Date(2025, time.May, 15, 10, 30, 0, 0, time.UTC)

	t.Run("same day of month", func(t *testing.T) {
		cases := map[string]time.Time{
			"1m":  time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC),
			"3m":  time.Date(2025, time.August, 15, 10, 30, 0, 0, time.UTC),
			"6m":  time.Date(2025, time.November, 15, 10, 30, 0, 0, time.UTC),
			"12m": time.Date(2026, time.May, 15, 10, 30, 0, 0, time.UTC),
		}

		for duration, want := range cases {
			got, err := service.EndsAt(start, duration)
			require.NoError(t, err, duration)
			assert.Equal(t, want, got, duration)
		}
	})

	t.Run("clamps to last day of shorter month", func(t *testing.T) {
		jan31 := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

		got, err := service.EndsAt(jan31, "1m")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("clamps to leap day", func(t *testing.T) {
		jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

		got, err := service.EndsAt(jan31, "1m")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("year-end rollover", func(t *testing.T) {
		nov := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)

		got, err := service.EndsAt(nov, "3m")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("august plus six months clamps", func(t *testing.T) {
		aug31 := time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)

		got, err := service.EndsAt(aug31, "6m")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := service.EndsAt(start, "forever")
		assert.ErrorIs(t, err, service.ErrInvalidDuration)
	})
}
