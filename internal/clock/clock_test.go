package clock

import (
	"testing"
	"time"
)

func TestClockQuantizesToTicks(t *testing.T) {
	c := New(200 * time.Millisecond)

	if c.Now() != 0 {
		t.Fatalf("Now = %v at construction, want 0", c.Now())
	}
	if c.TickLength() != 200*time.Millisecond {
		t.Fatalf("TickLength = %v", c.TickLength())
	}

	for i := 1; i <= 10; i++ {
		c.Advance()
		want := time.Duration(i) * 200 * time.Millisecond
		if c.Now() != want {
			t.Fatalf("tick %d: Now = %v, want %v", i, c.Now(), want)
		}
		if c.Ticks() != uint64(i) {
			t.Fatalf("tick %d: Ticks = %d", i, c.Ticks())
		}
	}
}

func TestClockIsMonotonic(t *testing.T) {
	c := New(50 * time.Millisecond)
	prev := c.Now()
	for i := 0; i < 1000; i++ {
		c.Advance()
		if c.Now() <= prev {
			t.Fatalf("clock regressed: %v after %v", c.Now(), prev)
		}
		prev = c.Now()
	}
}
