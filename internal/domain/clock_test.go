package domain

import (
	"errors"
	"testing"
)

func TestValidateTimeWindow(t *testing.T) {
	cases := []struct {
		start, end string
		want       error
	}{
		{"09:00", "17:00", nil},
		{"00:00", "23:59", nil},
		{"18:00", "09:00", ErrEndBeforeStart},
		{"14:00", "14:00", ErrEndBeforeStart},
		{"9am", "17:00", ErrInvalidClock},
		{"09:00", "25:00", ErrInvalidClock},
		{"09:61", "17:00", ErrInvalidClock},
	}
	for _, c := range cases {
		err := ValidateTimeWindow(c.start, c.end)
		if !errors.Is(err, c.want) {
			t.Fatalf("ValidateTimeWindow(%q, %q): got %v, want %v", c.start, c.end, err, c.want)
		}
	}
}

func TestWindowHoursRoundsUp(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"10:00", "12:00", 2},
		{"10:00", "11:30", 2},
		{"10:00", "10:15", 1},
		{"bad", "worse", 1},
	}
	for _, c := range cases {
		if got := WindowHours(c.start, c.end); got != c.want {
			t.Fatalf("WindowHours(%q, %q): got %d, want %d", c.start, c.end, got, c.want)
		}
	}
}
