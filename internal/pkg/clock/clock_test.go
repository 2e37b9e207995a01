package clock_test

import (
	"testing"
	"time"

	"warehouse/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem(t *testing.T) {
	t.Run("returns current time in UTC", func(t *testing.T) {
		before := time.Now().UTC()
		now := clock.System()
		after := time.Now().UTC()

		require.Equal(t, time.UTC, now.Location())
		assert.False(t, now.Before(before))
		assert.False(t, now.After(after))
	})
}

func TestFixed(t *testing.T) {
	t.Run("always returns the frozen instant", func(t *testing.T) {
		frozen := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
		now := clock.Fixed(frozen)

		assert.Equal(t, frozen, now())
		assert.Equal(t, frozen, now())
	})
}
