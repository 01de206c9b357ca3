package clock

import (
	"testing"
	"time"
)

func TestManual(t *testing.T) {
	// Arrange
	start := time.Date(2024, 11, 9, 10, 0, 0, 0, time.UTC)
	c := NewManual(start)

	// Act
	c.Advance(61 * time.Second)

	// Assert
	if got := c.Now().Sub(start); got != 61*time.Second {
		t.Fatalf("elapsed = %v, want 61s", got)
	}

	c.Set(start)
	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", c.Now(), start)
	}
}

func TestTimeClocker(t *testing.T) {
	before := time.Now()
	got := New().Now()
	if got.Before(before) {
		t.Fatalf("Now() = %v is before %v", got, before)
	}
}
