package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEndBeforeStart = errors.New("end time must be after start time")
	ErrInvalidClock   = errors.New("invalid time, want HH:MM")
)

// ValidateTimeWindow enforces end strictly after start on HH:MM values. Used
// for both booking windows and weekly availability windows.
func ValidateTimeWindow(startTime, endTime string) error {
	start, err := parseClock(startTime)
	if err != nil {
		return err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return err
	}
	if end <= start {
		return ErrEndBeforeStart
	}
	return nil
}

// WindowHours derives a whole-hour duration from the window, rounding up and
// never below one hour.
func WindowHours(startTime, endTime string) int {
	start, err1 := parseClock(startTime)
	end, err2 := parseClock(endTime)
	if err1 != nil || err2 != nil || end <= start {
		return 1
	}
	h := (end - start + 59) / 60
	if h < 1 {
		h = 1
	}
	return h
}

func parseClock(v string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(v, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	return h*60 + m, nil
}
