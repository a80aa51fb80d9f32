package handler

import (
	"errors"
	"net/http"

	"focal/internal/domain"
	"focal/internal/middleware"
	"focal/internal/repository"
	"focal/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	svc        *service.ReviewService
	reviewRepo *repository.ReviewRepository
}

func NewReviewHandler(svc *service.ReviewService, reviewRepo *repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{svc: svc, reviewRepo: reviewRepo}
}

type CreateReviewRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"max=2000"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rv, err := h.svc.Create(middleware.GetUserID(c), req.BookingID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, service.ErrNotBookingParty):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrReviewExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrBookingNotDone), errors.Is(err, service.ErrRatingOutOfRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create review failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, rv)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(idParam(c, "id"), middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		case errors.Is(err, service.ErrNotReviewAuthor):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetVisibility is admin moderation: hidden reviews drop out of the
// photographer's aggregate.
func (h *ReviewHandler) SetVisibility(c *gin.Context) {
	var req struct {
		Visible *bool `json:"visible" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rv, err := h.svc.SetVisibility(idParam(c, "id"), *req.Visible)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, rv)
}

// ListForPhotographer is public; only visible reviews are returned unless the
// caller is an admin.
func (h *ReviewHandler) ListForPhotographer(c *gin.Context) {
	limit, offset := pagination(c)
	visibleOnly := middleware.GetRole(c) != domain.RoleAdmin
	list, err := h.reviewRepo.ListByPhotographerID(idParam(c, "id"), visibleOnly, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": list})
}
