package data

import (
	"testing"
	"time"

	"eventAdmin/internal/lib/logger/handlers/slogdiscard"
	"eventAdmin/internal/storage/memory"
)

// stepClock advances by one second on every read so creation timestamps
// stay distinct and ordered.
type stepClock struct {
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()

	store := memory.New()

	return New(slogdiscard.NewDiscardLogger(), store, newStepClock()), store
}
