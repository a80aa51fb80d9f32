package service

import (
	"errors"
	"fmt"
	"time"

	"focal/internal/domain"
	"focal/internal/models"
)

var (
	ErrUnknownGatewayStatus = errors.New("unknown gateway status")
	ErrRefundNotActionable  = errors.New("refund is not in an actionable state")
)

type RefundAdminStore interface {
	GetByID(id uint) (*models.Refund, error)
	Update(*models.Refund) error
}

// PaymentService applies gateway callbacks to payment rows and drives the
// refund approval flow. It never calls out to a gateway; callbacks arrive via
// the webhook handler.
type PaymentService struct {
	payments PaymentStore
	refunds  RefundAdminStore
	bookings BookingStore
	notify   *NotificationService
}

func NewPaymentService(payments PaymentStore, refunds RefundAdminStore, bookings BookingStore, notify *NotificationService) *PaymentService {
	return &PaymentService{payments: payments, refunds: refunds, bookings: bookings, notify: notify}
}

// ApplyGatewayEvent records a gateway status callback for a booking's
// payment. pending -> processing -> succeeded/failed; anything else is the
// refund flow's job.
func (s *PaymentService) ApplyGatewayEvent(bookingID uint, gatewayRef, status string) (*models.Payment, error) {
	p, err := s.payments.GetByBookingID(bookingID)
	if err != nil {
		return nil, err
	}
	switch status {
	case domain.PaymentProcessing:
		p.Status = domain.PaymentProcessing
	case domain.PaymentSucceeded:
		now := time.Now()
		p.Status = domain.PaymentSucceeded
		p.PaidAt = &now
	case domain.PaymentFailed:
		p.Status = domain.PaymentFailed
	default:
		return nil, ErrUnknownGatewayStatus
	}
	if gatewayRef != "" {
		ref := gatewayRef
		p.GatewayRef = &ref
	}
	if err := s.payments.Update(p); err != nil {
		return nil, err
	}
	if p.Status == domain.PaymentSucceeded {
		if b, err := s.bookings.GetByID(p.BookingID); err == nil {
			s.notify.Notify(b.ClientID, domain.NotifyPayment, "Payment received",
				fmt.Sprintf("Payment for booking #%d succeeded", b.ID),
				map[string]interface{}{"booking_id": b.ID, "payment_id": p.ID})
		}
	}
	return p, nil
}

func (s *PaymentService) ApproveRefund(refundID uint) (*models.Refund, error) {
	rf, err := s.refunds.GetByID(refundID)
	if err != nil {
		return nil, err
	}
	if rf.Status != domain.RefundPending {
		return nil, ErrRefundNotActionable
	}
	rf.Status = domain.RefundApproved
	if err := s.refunds.Update(rf); err != nil {
		return nil, err
	}
	return rf, nil
}

func (s *PaymentService) RejectRefund(refundID uint, reason string) (*models.Refund, error) {
	rf, err := s.refunds.GetByID(refundID)
	if err != nil {
		return nil, err
	}
	if rf.Status != domain.RefundPending {
		return nil, ErrRefundNotActionable
	}
	rf.Status = domain.RefundRejected
	if reason != "" {
		rf.Reason = rf.Reason + " | rejected: " + reason
	}
	if err := s.refunds.Update(rf); err != nil {
		return nil, err
	}
	return rf, nil
}

// CompleteRefund finalizes an approved refund: the payment flips to refunded
// (or partially_refunded below 100%), and the booking enters its terminal
// refunded status through the lifecycle table.
func (s *PaymentService) CompleteRefund(refundID uint) (*models.Refund, error) {
	rf, err := s.refunds.GetByID(refundID)
	if err != nil {
		return nil, err
	}
	if rf.Status != domain.RefundApproved && rf.Status != domain.RefundProcessing {
		return nil, ErrRefundNotActionable
	}
	b, err := s.bookings.GetByID(rf.BookingID)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckTransition(b.Status, domain.BookingRefunded); err != nil {
		return nil, err
	}
	p, err := s.payments.GetByBookingID(rf.BookingID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if rf.Percentage >= 100 {
		p.Status = domain.PaymentRefunded
	} else {
		p.Status = domain.PaymentPartiallyRefunded
	}
	p.RefundedAt = &now
	if err := s.payments.Update(p); err != nil {
		return nil, err
	}
	b.Status = domain.BookingRefunded
	if err := s.bookings.Update(b); err != nil {
		return nil, err
	}
	rf.Status = domain.RefundCompleted
	rf.ProcessedAt = &now
	if err := s.refunds.Update(rf); err != nil {
		return nil, err
	}
	s.notify.Notify(b.ClientID, domain.NotifyPayment, "Refund issued",
		fmt.Sprintf("Refund of %.2f (%s) for booking #%d completed", rf.Amount, rf.PolicyTier, b.ID),
		map[string]interface{}{"booking_id": b.ID, "refund_id": rf.ID})
	return rf, nil
}
