package domain

import "fmt"

// bookingTransitions is the full lifecycle graph. Statuses absent from the
// map (declined, cancelled, delivered, refunded) are terminal.
var bookingTransitions = map[string][]string{
	BookingPending:    {BookingConfirmed, BookingDeclined, BookingCancelled},
	BookingConfirmed:  {BookingInProgress, BookingCancelled, BookingRefunded},
	BookingInProgress: {BookingCompleted, BookingCancelled, BookingRefunded},
	BookingCompleted:  {BookingDelivered},
}

// TransitionError reports an illegal booking lifecycle move.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid booking transition %s -> %s", e.From, e.To)
}

// CanTransition reports whether a booking may move from one status to
// another. Enforced in the service layer, never by the storage layer.
func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns a TransitionError when the move is illegal.
func CheckTransition(from, to string) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// IsTerminalStatus reports whether no further transitions exist.
func IsTerminalStatus(status string) bool {
	return len(bookingTransitions[status]) == 0
}
