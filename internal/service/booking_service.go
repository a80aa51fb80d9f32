package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"focal/config"
	"focal/internal/domain"
	"focal/internal/models"

	"gorm.io/gorm"
)

var (
	ErrEndBeforeStart    = domain.ErrEndBeforeStart
	ErrDateInPast        = errors.New("booking date must be in the future")
	ErrDateBlocked       = errors.New("photographer is not available on that date")
	ErrSlotTaken         = errors.New("photographer already has a booking in that window")
	ErrNotBookingParty   = errors.New("not a party to this booking")
	ErrBookingNotPayable = errors.New("booking has no successful payment")
	ErrRefundExists      = errors.New("refund already requested for this booking")
)

type BookingStore interface {
	Create(*models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	Update(*models.Booking) error
	CountOverlapping(photographerID uint, date time.Time, startTime, endTime string) (int64, error)
}

type PhotographerStore interface {
	GetByID(id uint) (*models.Photographer, error)
	IncrementTotalBookings(photographerID uint) error
}

type PaymentStore interface {
	Create(*models.Payment) error
	GetByBookingID(bookingID uint) (*models.Payment, error)
	Update(*models.Payment) error
}

type RefundStore interface {
	Create(*models.Refund) error
	GetByBookingID(bookingID uint) (*models.Refund, error)
}

type EarningStore interface {
	Create(*models.Earning) error
}

type BlockedDateChecker interface {
	IsDateBlocked(photographerID uint, date time.Time) (bool, error)
}

// BookingService owns the booking lifecycle: every status move goes through
// the domain transition table, and pricing is rederived before any persist
// that touches a price input.
type BookingService struct {
	platform      *config.PlatformConfig
	bookings      BookingStore
	photographers PhotographerStore
	payments      PaymentStore
	refunds       RefundStore
	earnings      EarningStore
	blocked       BlockedDateChecker
	notify        *NotificationService
}

func NewBookingService(
	platform *config.PlatformConfig,
	bookings BookingStore,
	photographers PhotographerStore,
	payments PaymentStore,
	refunds RefundStore,
	earnings EarningStore,
	blocked BlockedDateChecker,
	notify *NotificationService,
) *BookingService {
	return &BookingService{
		platform:      platform,
		bookings:      bookings,
		photographers: photographers,
		payments:      payments,
		refunds:       refunds,
		earnings:      earnings,
		blocked:       blocked,
		notify:        notify,
	}
}

type CreateBookingInput struct {
	PhotographerID uint
	Date           time.Time
	StartTime      string // HH:MM
	EndTime        string
	DurationHours  int
	BasePrice      float64
	Location       string
	Notes          string
}

func (s *BookingService) Create(clientID uint, in CreateBookingInput) (*models.Booking, error) {
	if err := domain.ValidateTimeWindow(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}
	if !in.Date.After(time.Now()) {
		return nil, ErrDateInPast
	}
	photographer, err := s.photographers.GetByID(in.PhotographerID)
	if err != nil {
		return nil, err
	}
	if s.blocked != nil {
		blocked, err := s.blocked.IsDateBlocked(photographer.ID, in.Date)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, ErrDateBlocked
		}
	}
	if n, err := s.bookings.CountOverlapping(photographer.ID, in.Date, in.StartTime, in.EndTime); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, ErrSlotTaken
	}
	b := &models.Booking{
		ClientID:       clientID,
		PhotographerID: photographer.ID,
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		DurationHours:  in.DurationHours,
		BasePrice:      in.BasePrice,
		HourlyRate:     photographer.HourlyRate,
		Location:       in.Location,
		Notes:          in.Notes,
		Status:         domain.BookingPending,
	}
	if b.DurationHours < 1 {
		b.DurationHours = domain.WindowHours(in.StartTime, in.EndTime)
	}
	if s.platform != nil {
		b.CommissionPercentage = s.platform.CommissionPercentage
		b.CommissionFixed = s.platform.CommissionFixed
	}
	b.Recalculate()
	if err := s.bookings.Create(b); err != nil {
		return nil, err
	}
	s.notify.Notify(photographer.UserID, domain.NotifyBookingRequest, "New booking request",
		fmt.Sprintf("Booking #%d requested for %s", b.ID, b.Date.Format("2006-01-02")),
		map[string]interface{}{"booking_id": b.ID})
	return b, nil
}

type UpdateBookingInput struct {
	Date          *time.Time
	StartTime     *string
	EndTime       *string
	DurationHours *int
	BasePrice     *float64
	Location      *string
	Notes         *string
}

// Update applies a partial edit. The time window is re-validated against the
// merged values, not just the supplied ones, so a partial update can never
// introduce an inverted interval. Pricing is recomputed when any price input
// changed.
func (s *BookingService) Update(bookingID, clientID uint, in UpdateBookingInput) (*models.Booking, error) {
	b, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, ErrNotBookingParty
	}
	if b.Status != domain.BookingPending {
		return nil, &domain.TransitionError{From: b.Status, To: b.Status}
	}
	repriced := false
	if in.Date != nil {
		if !in.Date.After(time.Now()) {
			return nil, ErrDateInPast
		}
		b.Date = *in.Date
	}
	if in.StartTime != nil {
		b.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		b.EndTime = *in.EndTime
	}
	if err := domain.ValidateTimeWindow(b.StartTime, b.EndTime); err != nil {
		return nil, err
	}
	if in.DurationHours != nil && *in.DurationHours >= 1 {
		b.DurationHours = *in.DurationHours
		repriced = true
	}
	if in.BasePrice != nil {
		b.BasePrice = *in.BasePrice
		repriced = true
	}
	if in.Location != nil {
		b.Location = *in.Location
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}
	if repriced {
		b.Recalculate()
	}
	if err := s.bookings.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Confirm moves pending -> confirmed, opens the pending payment row and
// counts the booking toward the photographer's total.
func (s *BookingService) Confirm(bookingID, photographerUserID uint) (*models.Booking, error) {
	b, err := s.ownedByPhotographer(bookingID, photographerUserID)
	if err != nil {
		return nil, err
	}
	if err := s.transition(b, domain.BookingConfirmed); err != nil {
		return nil, err
	}
	payment := &models.Payment{
		BookingID:  b.ID,
		Amount:     b.Total,
		Commission: b.Commission,
		Method:     "credit_card",
		Status:     domain.PaymentPending,
	}
	if s.platform != nil && s.platform.Currency != "" {
		payment.Currency = s.platform.Currency
	}
	if err := s.payments.Create(payment); err != nil {
		log.Printf("[booking] payment row create failed: booking=%d err=%v", b.ID, err)
	}
	_ = s.photographers.IncrementTotalBookings(b.PhotographerID)
	s.notify.Notify(b.ClientID, domain.NotifyBookingAccepted, "Booking confirmed",
		fmt.Sprintf("Booking #%d was confirmed", b.ID), map[string]interface{}{"booking_id": b.ID})
	return b, nil
}

func (s *BookingService) Decline(bookingID, photographerUserID uint, reason string) (*models.Booking, error) {
	b, err := s.ownedByPhotographer(bookingID, photographerUserID)
	if err != nil {
		return nil, err
	}
	b.CancellationReason = reason
	if err := s.transition(b, domain.BookingDeclined); err != nil {
		return nil, err
	}
	s.notify.Notify(b.ClientID, domain.NotifyBookingDeclined, "Booking declined",
		fmt.Sprintf("Booking #%d was declined", b.ID), map[string]interface{}{"booking_id": b.ID})
	return b, nil
}

func (s *BookingService) Start(bookingID, photographerUserID uint) (*models.Booking, error) {
	b, err := s.ownedByPhotographer(bookingID, photographerUserID)
	if err != nil {
		return nil, err
	}
	if err := s.transition(b, domain.BookingInProgress); err != nil {
		return nil, err
	}
	return b, nil
}

// Complete stamps CompletedAt and writes the photographer's earning row for
// the month the shoot completed in.
func (s *BookingService) Complete(bookingID, photographerUserID uint) (*models.Booking, error) {
	b, err := s.ownedByPhotographer(bookingID, photographerUserID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	b.CompletedAt = &now
	if err := s.transition(b, domain.BookingCompleted); err != nil {
		return nil, err
	}
	if s.earnings != nil {
		e := &models.Earning{
			PhotographerID: b.PhotographerID,
			BookingID:      b.ID,
			Month:          int(now.Month()),
			Year:           now.Year(),
			TotalAmount:    b.Total,
			Commission:     b.Commission,
			Earnings:       b.PhotographerEarnings,
			PayoutStatus:   domain.PayoutPending,
		}
		if err := s.earnings.Create(e); err != nil {
			log.Printf("[booking] earning row create failed: booking=%d err=%v", b.ID, err)
		}
	}
	s.notify.Notify(b.ClientID, domain.NotifyBookingCompleted, "Session completed",
		fmt.Sprintf("Booking #%d is completed", b.ID), map[string]interface{}{"booking_id": b.ID})
	return b, nil
}

func (s *BookingService) Deliver(bookingID, photographerUserID uint) (*models.Booking, error) {
	b, err := s.ownedByPhotographer(bookingID, photographerUserID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	b.DeliveredAt = &now
	if err := s.transition(b, domain.BookingDelivered); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel records who cancelled and why. cancelledBy must be one of
// client | photographer | admin; the handler derives it from the actor role.
func (s *BookingService) Cancel(bookingID uint, cancelledBy, reason string) (*models.Booking, error) {
	b, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	b.CancelledBy = cancelledBy
	b.CancellationReason = reason
	b.CancelledAt = &now
	if err := s.transition(b, domain.BookingCancelled); err != nil {
		return nil, err
	}
	photographer, err := s.photographers.GetByID(b.PhotographerID)
	if err == nil {
		s.notify.Notify(photographer.UserID, domain.NotifyBookingCancelled, "Booking cancelled",
			fmt.Sprintf("Booking #%d was cancelled by %s", b.ID, cancelledBy),
			map[string]interface{}{"booking_id": b.ID})
	}
	return b, nil
}

// RequestRefund evaluates the tiered policy against the interval between now
// and the booking date and opens a pending refund. The booking only becomes
// refunded once the refund completes.
func (s *BookingService) RequestRefund(bookingID, clientID uint, reason string) (*models.Refund, error) {
	b, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, ErrNotBookingParty
	}
	if err := domain.CheckTransition(b.Status, domain.BookingRefunded); err != nil {
		return nil, err
	}
	payment, err := s.payments.GetByBookingID(b.ID)
	if err != nil || payment.Status != domain.PaymentSucceeded {
		return nil, ErrBookingNotPayable
	}
	if _, err := s.refunds.GetByBookingID(b.ID); err == nil {
		return nil, ErrRefundExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	days := int(time.Until(b.Date).Hours() / 24)
	tier, pct := domain.EvaluateRefund(days)
	refund := &models.Refund{
		PaymentID:  payment.ID,
		BookingID:  b.ID,
		Amount:     domain.RefundAmount(payment.Amount, pct),
		Percentage: pct,
		PolicyTier: tier,
		Reason:     reason,
		Status:     domain.RefundPending,
	}
	if err := s.refunds.Create(refund); err != nil {
		return nil, err
	}
	return refund, nil
}

// transition validates the move against the lifecycle table, then persists.
func (s *BookingService) transition(b *models.Booking, to string) error {
	if err := domain.CheckTransition(b.Status, to); err != nil {
		return err
	}
	b.Status = to
	return s.bookings.Update(b)
}

func (s *BookingService) ownedByPhotographer(bookingID, photographerUserID uint) (*models.Booking, error) {
	b, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	photographer, err := s.photographers.GetByID(b.PhotographerID)
	if err != nil {
		return nil, err
	}
	if photographer.UserID != photographerUserID {
		return nil, ErrNotBookingParty
	}
	return b, nil
}
