package service

// In-memory store fakes shared by the service tests.

import (
	"time"

	"focal/internal/models"

	"gorm.io/gorm"
)

type fakeUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*models.User)}
}

func (f *fakeUserStore) Create(u *models.User) error {
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) GetByGoogleID(googleID string) (*models.User, error) {
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) GetByResetToken(tokenHash string) (*models.User, error) {
	for _, u := range f.users {
		if u.ResetPasswordToken != "" && u.ResetPasswordToken == tokenHash {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) Update(u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) SetRefreshToken(userID uint, token string) error {
	u, ok := f.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.RefreshToken = token
	return nil
}

type fakeBookingStore struct {
	bookings map[uint]*models.Booking
	nextID   uint
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[uint]*models.Booking)}
}

func (f *fakeBookingStore) Create(b *models.Booking) error {
	f.nextID++
	b.ID = f.nextID
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingStore) GetByID(id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (f *fakeBookingStore) Update(b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingStore) CountOverlapping(photographerID uint, date time.Time, startTime, endTime string) (int64, error) {
	return 0, nil
}

type fakePhotographerStore struct {
	profiles map[uint]*models.Photographer
}

func newFakePhotographerStore(profiles ...*models.Photographer) *fakePhotographerStore {
	f := &fakePhotographerStore{profiles: make(map[uint]*models.Photographer)}
	for _, p := range profiles {
		f.profiles[p.ID] = p
	}
	return f
}

func (f *fakePhotographerStore) GetByID(id uint) (*models.Photographer, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakePhotographerStore) IncrementTotalBookings(photographerID uint) error {
	if p, ok := f.profiles[photographerID]; ok {
		p.TotalBookings++
	}
	return nil
}

func (f *fakePhotographerStore) SetRating(photographerID uint, rating float64, totalReviews int) error {
	p, ok := f.profiles[photographerID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Rating = rating
	p.TotalReviews = totalReviews
	return nil
}

type fakePaymentStore struct {
	payments map[uint]*models.Payment // keyed by booking ID
	nextID   uint
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: make(map[uint]*models.Payment)}
}

func (f *fakePaymentStore) Create(p *models.Payment) error {
	f.nextID++
	p.ID = f.nextID
	f.payments[p.BookingID] = p
	return nil
}

func (f *fakePaymentStore) GetByBookingID(bookingID uint) (*models.Payment, error) {
	p, ok := f.payments[bookingID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakePaymentStore) Update(p *models.Payment) error {
	f.payments[p.BookingID] = p
	return nil
}

type fakeRefundStore struct {
	refunds map[uint]*models.Refund // keyed by refund ID
	nextID  uint
}

func newFakeRefundStore() *fakeRefundStore {
	return &fakeRefundStore{refunds: make(map[uint]*models.Refund)}
}

func (f *fakeRefundStore) Create(rf *models.Refund) error {
	f.nextID++
	rf.ID = f.nextID
	f.refunds[rf.ID] = rf
	return nil
}

func (f *fakeRefundStore) GetByID(id uint) (*models.Refund, error) {
	rf, ok := f.refunds[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rf, nil
}

func (f *fakeRefundStore) GetByBookingID(bookingID uint) (*models.Refund, error) {
	for _, rf := range f.refunds {
		if rf.BookingID == bookingID {
			return rf, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRefundStore) Update(rf *models.Refund) error {
	f.refunds[rf.ID] = rf
	return nil
}

type fakeEarningStore struct {
	earnings []*models.Earning
}

func (f *fakeEarningStore) Create(e *models.Earning) error {
	f.earnings = append(f.earnings, e)
	return nil
}

type fakeReviewStore struct {
	reviews map[uint]*models.Review
	nextID  uint
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: make(map[uint]*models.Review)}
}

func (f *fakeReviewStore) Create(rv *models.Review) error {
	f.nextID++
	rv.ID = f.nextID
	f.reviews[rv.ID] = rv
	return nil
}

func (f *fakeReviewStore) GetByID(id uint) (*models.Review, error) {
	rv, ok := f.reviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rv, nil
}

func (f *fakeReviewStore) GetByBookingID(bookingID uint) (*models.Review, error) {
	for _, rv := range f.reviews {
		if rv.BookingID == bookingID {
			return rv, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewStore) Update(rv *models.Review) error {
	f.reviews[rv.ID] = rv
	return nil
}

func (f *fakeReviewStore) Delete(id uint) error {
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewStore) VisibleRatings(photographerID uint) ([]int, error) {
	var ratings []int
	for _, rv := range f.reviews {
		if rv.PhotographerID == photographerID && rv.IsVisible {
			ratings = append(ratings, rv.Rating)
		}
	}
	return ratings, nil
}
