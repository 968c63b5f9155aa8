package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManagedClockWarpsForward(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewManaged(start)

	assert.Equal(t, start, c.Now())

	warped := c.WarpForward(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), warped)
	assert.Equal(t, warped, c.Now())
}

func TestNewTracksWallClock(t *testing.T) {
	c := New()
	before := time.Now()
	now := c.Now()
	assert.False(t, now.Before(before))
}
