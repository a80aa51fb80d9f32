package repository

import (
	"testing"
	"time"

	"focal/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookingRepoCountOverlappingFiltersActiveStatuses(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewBookingRepository(gdb)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT count(.+) FROM `bookings`").
		WithArgs(uint(1), "2026-09-10",
			domain.BookingPending, domain.BookingConfirmed, domain.BookingInProgress,
			"12:00", "10:00").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	n, err := repo.CountOverlapping(1, date, "10:00", "12:00")
	if err != nil {
		t.Fatalf("count overlapping: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 overlap, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
