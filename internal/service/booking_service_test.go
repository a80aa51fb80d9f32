package service

import (
	"errors"
	"testing"
	"time"

	"focal/config"
	"focal/internal/domain"
	"focal/internal/models"
)

func newBookingFixture() (*BookingService, *fakeBookingStore, *fakePhotographerStore, *fakePaymentStore, *fakeRefundStore, *fakeEarningStore) {
	bookings := newFakeBookingStore()
	photographers := newFakePhotographerStore(&models.Photographer{ID: 1, UserID: 10, HourlyRate: 50})
	payments := newFakePaymentStore()
	refunds := newFakeRefundStore()
	earnings := &fakeEarningStore{}
	svc := NewBookingService(nil, bookings, photographers, payments, refunds, earnings, nil, nil)
	return svc, bookings, photographers, payments, refunds, earnings
}

func futureDate(days int) time.Time {
	return time.Now().AddDate(0, 0, days).Add(time.Hour)
}

func validCreateInput() CreateBookingInput {
	return CreateBookingInput{
		PhotographerID: 1,
		Date:           futureDate(14),
		StartTime:      "10:00",
		EndTime:        "12:00",
		DurationHours:  2,
		BasePrice:      100,
		Location:       "Old Port, Montreal",
	}
}

func TestCreateBookingComputesPricing(t *testing.T) {
	svc, _, _, _, _, _ := newBookingFixture()
	b, err := svc.Create(5, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Status != domain.BookingPending {
		t.Fatalf("new booking should be pending, got %s", b.Status)
	}
	// base 100 + 50/h * 2h = 200; commission 200*9% + 2 = 20
	if b.Subtotal != 200 || b.Commission != 20 || b.Total != 220 || b.PhotographerEarnings != 180 {
		t.Fatalf("pricing wrong: %+v", b)
	}
	if b.CommissionPercentage != 9 || b.CommissionFixed != 2 {
		t.Fatalf("platform defaults not applied: pct=%v fixed=%v", b.CommissionPercentage, b.CommissionFixed)
	}
}

func TestCreateBookingUsesPlatformCommissionConfig(t *testing.T) {
	bookings := newFakeBookingStore()
	photographers := newFakePhotographerStore(&models.Photographer{ID: 1, UserID: 10, HourlyRate: 50})
	payments := newFakePaymentStore()
	platform := &config.PlatformConfig{CommissionPercentage: 12, CommissionFixed: 5, Currency: "USD"}
	svc := NewBookingService(platform, bookings, photographers, payments, newFakeRefundStore(), &fakeEarningStore{}, nil, nil)

	b, err := svc.Create(5, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// base 100 + 50/h * 2h = 200; commission 200*12% + 5 = 29
	if b.CommissionPercentage != 12 || b.CommissionFixed != 5 {
		t.Fatalf("configured commission not applied: pct=%v fixed=%v", b.CommissionPercentage, b.CommissionFixed)
	}
	if b.Commission != 29 || b.Total != 229 || b.PhotographerEarnings != 171 {
		t.Fatalf("pricing wrong under configured commission: %+v", b)
	}

	if _, err := svc.Confirm(b.ID, 10); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	p, err := payments.GetByBookingID(b.ID)
	if err != nil {
		t.Fatalf("payment row: %v", err)
	}
	if p.Currency != "USD" {
		t.Fatalf("configured currency not applied: %q", p.Currency)
	}
}

func TestCreateBookingRejectsInvertedWindow(t *testing.T) {
	svc, _, _, _, _, _ := newBookingFixture()
	in := validCreateInput()
	in.StartTime, in.EndTime = "14:00", "13:00"
	if _, err := svc.Create(5, in); !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("expected ErrEndBeforeStart, got %v", err)
	}
	in.StartTime, in.EndTime = "14:00", "14:00"
	if _, err := svc.Create(5, in); !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("equal start/end: expected ErrEndBeforeStart, got %v", err)
	}
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	svc, _, _, _, _, _ := newBookingFixture()
	in := validCreateInput()
	in.Date = time.Now().AddDate(0, 0, -1)
	if _, err := svc.Create(5, in); !errors.Is(err, ErrDateInPast) {
		t.Fatalf("expected ErrDateInPast, got %v", err)
	}
}

func TestUpdateRevalidatesMergedWindow(t *testing.T) {
	svc, _, _, _, _, _ := newBookingFixture()
	b, err := svc.Create(5, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// Only the end time moves, to before the existing start.
	bad := "09:00"
	if _, err := svc.Update(b.ID, 5, UpdateBookingInput{EndTime: &bad}); !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("expected ErrEndBeforeStart on merged window, got %v", err)
	}
}

func TestUpdateRecomputesPricing(t *testing.T) {
	svc, _, _, _, _, _ := newBookingFixture()
	b, err := svc.Create(5, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	newBase := 300.0
	updated, err := svc.Update(b.ID, 5, UpdateBookingInput{BasePrice: &newBase})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	// base 300 + 50*2 = 400; commission 400*9% + 2 = 38
	if updated.Subtotal != 400 || updated.Commission != 38 || updated.Total != 438 {
		t.Fatalf("pricing not recomputed: %+v", updated)
	}
}

func TestLifecycleHappyPath(t *testing.T) {
	svc, _, photographers, payments, _, earnings := newBookingFixture()
	b, err := svc.Create(5, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Confirm(b.ID, 10); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	p, err := payments.GetByBookingID(b.ID)
	if err != nil {
		t.Fatalf("confirm should open a payment row: %v", err)
	}
	if p.Status != domain.PaymentPending || p.Amount != b.Total || p.Commission != b.Commission {
		t.Fatalf("payment row wrong: %+v", p)
	}
	if photographers.profiles[1].TotalBookings != 1 {
		t.Fatalf("confirm should count the booking")
	}

	if _, err := svc.Start(b.ID, 10); err != nil {
		t.Fatalf("start: %v", err)
	}
	done, err := svc.Complete(b.ID, 10)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.CompletedAt == nil {
		t.Fatalf("complete should stamp CompletedAt")
	}
	if len(earnings.earnings) != 1 || earnings.earnings[0].Earnings != b.PhotographerEarnings {
		t.Fatalf("complete should write one earning row, got %+v", earnings.earnings)
	}
	final, err := svc.Deliver(b.ID, 10)
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if final.Status != domain.BookingDelivered {
		t.Fatalf("expected delivered, got %s", final.Status)
	}
}

func TestPendingToDeliveredRejected(t *testing.T) {
	svc, _, _, _, _, _ := newBookingFixture()
	b, err := svc.Create(5, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = svc.Deliver(b.ID, 10)
	var te *domain.TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if te.From != domain.BookingPending || te.To != domain.BookingDelivered {
		t.Fatalf("error should name the illegal move, got %v", te)
	}
}

func TestConfirmByWrongPhotographerRejected(t *testing.T) {
	svc, _, _, _, _, _ := newBookingFixture()
	b, err := svc.Create(5, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Confirm(b.ID, 99); !errors.Is(err, ErrNotBookingParty) {
		t.Fatalf("expected ErrNotBookingParty, got %v", err)
	}
}

func TestCancelRecordsActorAndReason(t *testing.T) {
	svc, _, _, _, _, _ := newBookingFixture()
	b, err := svc.Create(5, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	cancelled, err := svc.Cancel(b.ID, domain.CancelledByClient, "change of plans")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != domain.BookingCancelled ||
		cancelled.CancelledBy != domain.CancelledByClient ||
		cancelled.CancellationReason != "change of plans" ||
		cancelled.CancelledAt == nil {
		t.Fatalf("cancellation not recorded: %+v", cancelled)
	}
	// Terminal: no further moves.
	if _, err := svc.Cancel(b.ID, domain.CancelledByAdmin, "again"); err == nil {
		t.Fatalf("cancelling a cancelled booking should fail")
	}
}

func TestRequestRefundAppliesPolicyTier(t *testing.T) {
	svc, _, _, payments, _, _ := newBookingFixture()
	in := validCreateInput()
	in.Date = futureDate(5) // 4-7 day window: 75%
	b, err := svc.Create(5, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Confirm(b.ID, 10); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	// Refund before payment succeeds is rejected.
	if _, err := svc.RequestRefund(b.ID, 5, "too expensive"); !errors.Is(err, ErrBookingNotPayable) {
		t.Fatalf("expected ErrBookingNotPayable, got %v", err)
	}

	p, _ := payments.GetByBookingID(b.ID)
	p.Status = domain.PaymentSucceeded

	rf, err := svc.RequestRefund(b.ID, 5, "schedule conflict")
	if err != nil {
		t.Fatalf("refund request: %v", err)
	}
	if rf.PolicyTier != domain.TierPartialRefund75 || rf.Percentage != 75 {
		t.Fatalf("expected partial_refund_75, got %+v", rf)
	}
	if rf.Amount != p.Amount*0.75 {
		t.Fatalf("refund amount: got %v want %v", rf.Amount, p.Amount*0.75)
	}
	if rf.Status != domain.RefundPending {
		t.Fatalf("new refund should be pending, got %s", rf.Status)
	}

	// Only one open refund per booking.
	if _, err := svc.RequestRefund(b.ID, 5, "again"); !errors.Is(err, ErrRefundExists) {
		t.Fatalf("expected ErrRefundExists, got %v", err)
	}
}

func TestRequestRefundOnPendingBookingRejected(t *testing.T) {
	svc, _, _, _, _, _ := newBookingFixture()
	b, err := svc.Create(5, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = svc.RequestRefund(b.ID, 5, "nope")
	var te *domain.TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("pending booking cannot be refunded; expected TransitionError, got %v", err)
	}
}
