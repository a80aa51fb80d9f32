package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"focal/internal/domain"
	"focal/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func bookingErrorStatus(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	(&BookingHandler{}).writeBookingError(c, err)
	return w.Code
}

func TestWriteBookingErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{service.ErrNotBookingParty, http.StatusForbidden},
		{&domain.TransitionError{From: domain.BookingPending, To: domain.BookingDelivered}, http.StatusConflict},
		{service.ErrSlotTaken, http.StatusConflict},
		{service.ErrEndBeforeStart, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %q", domain.ErrInvalidClock, "9am"), http.StatusUnprocessableEntity},
		{service.ErrDateBlocked, http.StatusUnprocessableEntity},
		// Anything unrecognized is a server-side failure, not client input.
		{errors.New("driver: bad connection"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := bookingErrorStatus(t, c.err); got != c.want {
			t.Fatalf("writeBookingError(%v): got %d, want %d", c.err, got, c.want)
		}
	}
}
