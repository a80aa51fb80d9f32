package handler

import (
	"net/http"
	"time"

	"focal/internal/domain"
	"focal/internal/middleware"
	"focal/internal/models"
	"focal/internal/repository"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	repo          *repository.AvailabilityRepository
	photographers *repository.PhotographerRepository
}

func NewAvailabilityHandler(repo *repository.AvailabilityRepository, photographers *repository.PhotographerRepository) *AvailabilityHandler {
	return &AvailabilityHandler{repo: repo, photographers: photographers}
}

// ListForPhotographer is public so customers can see weekly windows and
// blocked days before booking.
func (h *AvailabilityHandler) ListForPhotographer(c *gin.Context) {
	photographerID := idParam(c, "id")
	windows, err := h.repo.ListByPhotographerID(photographerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	blocked, err := h.repo.ListBlockedDates(photographerID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": windows, "blocked_dates": blocked})
}

type AvailabilityRequest struct {
	DayOfWeek   int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsAvailable *bool  `json:"is_available"`
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	p, ok := h.myProfile(c)
	if !ok {
		return
	}
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := domain.ValidateTimeWindow(req.StartTime, req.EndTime); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	a := &models.Availability{
		PhotographerID: p.ID,
		DayOfWeek:      req.DayOfWeek,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		IsAvailable:    true,
	}
	if req.IsAvailable != nil {
		a.IsAvailable = *req.IsAvailable
	}
	if err := h.repo.Create(a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	p, ok := h.myProfile(c)
	if !ok {
		return
	}
	a, err := h.repo.GetByID(idParam(c, "id"))
	if err != nil || a.PhotographerID != p.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "availability not found"})
		return
	}
	if err := h.repo.Delete(a.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type BlockDateRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason string `json:"reason" binding:"max=255"`
}

func (h *AvailabilityHandler) BlockDate(c *gin.Context) {
	p, ok := h.myProfile(c)
	if !ok {
		return
	}
	var req BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
		return
	}
	b := &models.BlockedDate{
		PhotographerID: p.ID,
		Date:           date,
		Reason:         req.Reason,
	}
	if err := h.repo.CreateBlockedDate(b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *AvailabilityHandler) UnblockDate(c *gin.Context) {
	p, ok := h.myProfile(c)
	if !ok {
		return
	}
	blocked, err := h.repo.ListBlockedDates(p.ID, time.Time{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	id := idParam(c, "id")
	for _, b := range blocked {
		if b.ID == id {
			if err := h.repo.DeleteBlockedDate(id); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "blocked date not found"})
}

func (h *AvailabilityHandler) myProfile(c *gin.Context) (*models.Photographer, bool) {
	p, err := h.photographers.GetByUserID(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no photographer profile"})
		return nil, false
	}
	return p, true
}
