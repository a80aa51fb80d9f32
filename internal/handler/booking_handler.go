package handler

import (
	"errors"
	"net/http"
	"time"

	"focal/internal/domain"
	"focal/internal/middleware"
	"focal/internal/repository"
	"focal/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookingHandler struct {
	svc           *service.BookingService
	bookingRepo   *repository.BookingRepository
	photographers *repository.PhotographerRepository
}

func NewBookingHandler(svc *service.BookingService, bookingRepo *repository.BookingRepository, photographers *repository.PhotographerRepository) *BookingHandler {
	return &BookingHandler{svc: svc, bookingRepo: bookingRepo, photographers: photographers}
}

type CreateBookingRequest struct {
	PhotographerID uint    `json:"photographer_id" binding:"required"`
	Date           string  `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime      string  `json:"start_time" binding:"required"`
	EndTime        string  `json:"end_time" binding:"required"`
	DurationHours  int     `json:"duration_hours"`
	BasePrice      float64 `json:"base_price" binding:"required,gt=0"`
	Location       string  `json:"location" binding:"required,max=512"`
	Notes          string  `json:"notes" binding:"max=500"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
		return
	}
	b, err := h.svc.Create(middleware.GetUserID(c), service.CreateBookingInput{
		PhotographerID: req.PhotographerID,
		Date:           date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		DurationHours:  req.DurationHours,
		BasePrice:      req.BasePrice,
		Location:       req.Location,
		Notes:          req.Notes,
	})
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

type UpdateBookingRequest struct {
	Date          *string  `json:"date"`
	StartTime     *string  `json:"start_time"`
	EndTime       *string  `json:"end_time"`
	DurationHours *int     `json:"duration_hours"`
	BasePrice     *float64 `json:"base_price"`
	Location      *string  `json:"location"`
	Notes         *string  `json:"notes"`
}

func (h *BookingHandler) Update(c *gin.Context) {
	id := idParam(c, "id")
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := service.UpdateBookingInput{
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DurationHours: req.DurationHours,
		BasePrice:     req.BasePrice,
		Location:      req.Location,
		Notes:         req.Notes,
	}
	if req.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
			return
		}
		in.Date = &date
	}
	b, err := h.svc.Update(id, middleware.GetUserID(c), in)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.bookingRepo.GetByID(idParam(c, "id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	userID := middleware.GetUserID(c)
	if b.ClientID != userID && middleware.GetRole(c) != domain.RoleAdmin {
		p, err := h.photographers.GetByID(b.PhotographerID)
		if err != nil || p.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
	}
	c.JSON(http.StatusOK, b)
}

// List returns the caller's bookings: as client for customers, as assignee
// for photographers.
func (h *BookingHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pagination(c)
	if middleware.GetRole(c) == domain.RolePhotographer {
		p, err := h.photographers.GetByUserID(userID)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"bookings": []struct{}{}})
			return
		}
		list, err := h.bookingRepo.ListByPhotographerID(p.ID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": list})
		return
	}
	list, err := h.bookingRepo.ListByClientID(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	b, err := h.svc.Confirm(idParam(c, "id"), middleware.GetUserID(c))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Decline(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"max=500"`
	}
	_ = c.ShouldBindJSON(&req)
	b, err := h.svc.Decline(idParam(c, "id"), middleware.GetUserID(c), req.Reason)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Start(c *gin.Context) {
	b, err := h.svc.Start(idParam(c, "id"), middleware.GetUserID(c))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	b, err := h.svc.Complete(idParam(c, "id"), middleware.GetUserID(c))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Deliver(c *gin.Context) {
	b, err := h.svc.Deliver(idParam(c, "id"), middleware.GetUserID(c))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Cancel derives cancelled_by from the actor's role and checks the actor is a
// party to the booking (admins excepted).
func (h *BookingHandler) Cancel(c *gin.Context) {
	id := idParam(c, "id")
	var req struct {
		Reason string `json:"reason" binding:"max=500"`
	}
	_ = c.ShouldBindJSON(&req)
	userID := middleware.GetUserID(c)
	cancelledBy := domain.CancelledByClient
	switch middleware.GetRole(c) {
	case domain.RoleAdmin:
		cancelledBy = domain.CancelledByAdmin
	case domain.RolePhotographer:
		cancelledBy = domain.CancelledByPhotographer
	}
	if cancelledBy != domain.CancelledByAdmin {
		b, err := h.bookingRepo.GetByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		if cancelledBy == domain.CancelledByClient && b.ClientID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		if cancelledBy == domain.CancelledByPhotographer {
			p, err := h.photographers.GetByID(b.PhotographerID)
			if err != nil || p.UserID != userID {
				c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
		}
	}
	b, err := h.svc.Cancel(id, cancelledBy, req.Reason)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) RequestRefund(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rf, err := h.svc.RequestRefund(idParam(c, "id"), middleware.GetUserID(c), req.Reason)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rf)
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	var te *domain.TransitionError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrNotBookingParty):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &te):
		c.JSON(http.StatusConflict, gin.H{"error": te.Error()})
	case errors.Is(err, service.ErrSlotTaken),
		errors.Is(err, service.ErrRefundExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEndBeforeStart),
		errors.Is(err, domain.ErrInvalidClock),
		errors.Is(err, service.ErrDateInPast),
		errors.Is(err, service.ErrDateBlocked),
		errors.Is(err, service.ErrBookingNotPayable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking operation failed"})
	}
}
