package service

import (
	"errors"
	"fmt"

	"focal/internal/domain"
	"focal/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewExists     = errors.New("booking already has a review")
	ErrBookingNotDone   = errors.New("booking must be completed before it can be reviewed")
	ErrNotReviewAuthor  = errors.New("not the author of this review")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

type ReviewStore interface {
	Create(*models.Review) error
	GetByID(id uint) (*models.Review, error)
	GetByBookingID(bookingID uint) (*models.Review, error)
	Update(*models.Review) error
	Delete(id uint) error
	VisibleRatings(photographerID uint) ([]int, error)
}

// ProfileStore reads photographer profiles and is the single writer of the
// two derived review fields.
type ProfileStore interface {
	GetByID(id uint) (*models.Photographer, error)
	SetRating(photographerID uint, rating float64, totalReviews int) error
}

// ReviewService persists reviews and keeps the photographer's aggregate
// rating in sync. Every create, delete, and visibility flip triggers a full
// recomputation over the current visible set for that one photographer; the
// read-compute-write is not wrapped in a cross-document transaction, so
// concurrent review writes can leave a transiently stale aggregate that the
// next write corrects.
type ReviewService struct {
	reviews  ReviewStore
	profiles ProfileStore
	bookings BookingStore
	notify   *NotificationService
}

func NewReviewService(reviews ReviewStore, profiles ProfileStore, bookings BookingStore, notify *NotificationService) *ReviewService {
	return &ReviewService{reviews: reviews, profiles: profiles, bookings: bookings, notify: notify}
}

func (s *ReviewService) Create(clientID, bookingID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	b, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, ErrNotBookingParty
	}
	if b.Status != domain.BookingCompleted && b.Status != domain.BookingDelivered {
		return nil, ErrBookingNotDone
	}
	if _, err := s.reviews.GetByBookingID(bookingID); err == nil {
		return nil, ErrReviewExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	rv := &models.Review{
		BookingID:      bookingID,
		PhotographerID: b.PhotographerID,
		ClientID:       clientID,
		Rating:         rating,
		Comment:        comment,
		IsVisible:      true,
	}
	if err := s.reviews.Create(rv); err != nil {
		return nil, err
	}
	if err := s.syncRating(rv.PhotographerID); err != nil {
		return nil, err
	}
	if photographer, err := s.profiles.GetByID(rv.PhotographerID); err == nil {
		s.notify.Notify(photographer.UserID, domain.NotifyReview, "New review",
			fmt.Sprintf("Booking #%d received a %d-star review", b.ID, rating),
			map[string]interface{}{"booking_id": b.ID, "review_id": rv.ID})
	}
	return rv, nil
}

// SetVisibility hides or restores a review (moderation) and resyncs the
// aggregate, since only visible reviews count.
func (s *ReviewService) SetVisibility(reviewID uint, visible bool) (*models.Review, error) {
	rv, err := s.reviews.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if rv.IsVisible == visible {
		return rv, nil
	}
	rv.IsVisible = visible
	if err := s.reviews.Update(rv); err != nil {
		return nil, err
	}
	if err := s.syncRating(rv.PhotographerID); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *ReviewService) Delete(reviewID, actorID uint, actorRole string) error {
	rv, err := s.reviews.GetByID(reviewID)
	if err != nil {
		return err
	}
	if rv.ClientID != actorID && actorRole != domain.RoleAdmin {
		return ErrNotReviewAuthor
	}
	if err := s.reviews.Delete(reviewID); err != nil {
		return err
	}
	return s.syncRating(rv.PhotographerID)
}

// syncRating recomputes from the full visible set and overwrites the derived
// profile fields.
func (s *ReviewService) syncRating(photographerID uint) error {
	ratings, err := s.reviews.VisibleRatings(photographerID)
	if err != nil {
		return err
	}
	avg, count := domain.AggregateRatings(ratings)
	return s.profiles.SetRating(photographerID, avg, count)
}
