package service

import (
	"errors"
	"testing"

	"focal/internal/domain"
	"focal/internal/models"
)

func newPaymentFixture() (*PaymentService, *fakeBookingStore, *fakePaymentStore, *fakeRefundStore) {
	bookings := newFakeBookingStore()
	payments := newFakePaymentStore()
	refunds := newFakeRefundStore()
	svc := NewPaymentService(payments, refunds, bookings, nil)
	return svc, bookings, payments, refunds
}

func TestGatewayEventSucceededStampsPaidAt(t *testing.T) {
	svc, bookings, payments, _ := newPaymentFixture()
	b := &models.Booking{ClientID: 5, PhotographerID: 1, Status: domain.BookingConfirmed, Total: 220}
	_ = bookings.Create(b)
	_ = payments.Create(&models.Payment{BookingID: b.ID, Amount: 220, Status: domain.PaymentPending})

	p, err := svc.ApplyGatewayEvent(b.ID, "ch_12345", domain.PaymentSucceeded)
	if err != nil {
		t.Fatalf("apply event: %v", err)
	}
	if p.Status != domain.PaymentSucceeded || p.PaidAt == nil {
		t.Fatalf("succeeded event should stamp PaidAt, got %+v", p)
	}
	if p.GatewayRef == nil || *p.GatewayRef != "ch_12345" {
		t.Fatalf("gateway reference not recorded")
	}

	if _, err := svc.ApplyGatewayEvent(b.ID, "", "exploded"); !errors.Is(err, ErrUnknownGatewayStatus) {
		t.Fatalf("expected ErrUnknownGatewayStatus, got %v", err)
	}
}

func TestCompleteRefundFullFlow(t *testing.T) {
	svc, bookings, payments, refunds := newPaymentFixture()
	b := &models.Booking{ClientID: 5, PhotographerID: 1, Status: domain.BookingConfirmed, Total: 220}
	_ = bookings.Create(b)
	_ = payments.Create(&models.Payment{BookingID: b.ID, Amount: 220, Status: domain.PaymentSucceeded})
	rf := &models.Refund{
		BookingID:  b.ID,
		Amount:     220,
		Percentage: 100,
		PolicyTier: domain.TierFullRefund,
		Status:     domain.RefundPending,
	}
	_ = refunds.Create(rf)

	// Completing before approval is rejected.
	if _, err := svc.CompleteRefund(rf.ID); !errors.Is(err, ErrRefundNotActionable) {
		t.Fatalf("expected ErrRefundNotActionable, got %v", err)
	}

	if _, err := svc.ApproveRefund(rf.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	done, err := svc.CompleteRefund(rf.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != domain.RefundCompleted || done.ProcessedAt == nil {
		t.Fatalf("refund not finalized: %+v", done)
	}
	p, _ := payments.GetByBookingID(b.ID)
	if p.Status != domain.PaymentRefunded || p.RefundedAt == nil {
		t.Fatalf("payment should be refunded: %+v", p)
	}
	if b.Status != domain.BookingRefunded {
		t.Fatalf("booking should end refunded, got %s", b.Status)
	}

	// Terminal: completing again is rejected.
	if _, err := svc.CompleteRefund(rf.ID); !errors.Is(err, ErrRefundNotActionable) {
		t.Fatalf("second complete should fail, got %v", err)
	}
}

func TestCompleteRefundPartialMarksPartiallyRefunded(t *testing.T) {
	svc, bookings, payments, refunds := newPaymentFixture()
	b := &models.Booking{ClientID: 5, PhotographerID: 1, Status: domain.BookingConfirmed, Total: 220}
	_ = bookings.Create(b)
	_ = payments.Create(&models.Payment{BookingID: b.ID, Amount: 220, Status: domain.PaymentSucceeded})
	rf := &models.Refund{
		BookingID:  b.ID,
		Amount:     165,
		Percentage: 75,
		PolicyTier: domain.TierPartialRefund75,
		Status:     domain.RefundApproved,
	}
	_ = refunds.Create(rf)

	if _, err := svc.CompleteRefund(rf.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	p, _ := payments.GetByBookingID(b.ID)
	if p.Status != domain.PaymentPartiallyRefunded {
		t.Fatalf("75%% refund should leave the payment partially_refunded, got %s", p.Status)
	}
}

func TestRejectRefundKeepsBookingAlive(t *testing.T) {
	svc, bookings, _, refunds := newPaymentFixture()
	b := &models.Booking{ClientID: 5, PhotographerID: 1, Status: domain.BookingConfirmed}
	_ = bookings.Create(b)
	rf := &models.Refund{BookingID: b.ID, Status: domain.RefundPending, Reason: "changed my mind"}
	_ = refunds.Create(rf)

	rejected, err := svc.RejectRefund(rf.ID, "outside the policy window")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.RefundRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
	if b.Status != domain.BookingConfirmed {
		t.Fatalf("rejection must not touch the booking, got %s", b.Status)
	}
	if _, err := svc.ApproveRefund(rf.ID); !errors.Is(err, ErrRefundNotActionable) {
		t.Fatalf("rejected refund cannot be approved, got %v", err)
	}
}
