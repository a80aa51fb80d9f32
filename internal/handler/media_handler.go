package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"focal/internal/domain"
	"focal/internal/middleware"
	"focal/internal/models"
	"focal/internal/repository"
	"focal/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 25 << 20 // 25 MB

type MediaHandler struct {
	repo          *repository.MediaRepository
	photographers *repository.PhotographerRepository
	bookingRepo   *repository.BookingRepository
	uploads       cloudinary.Client
}

func NewMediaHandler(repo *repository.MediaRepository, photographers *repository.PhotographerRepository, bookingRepo *repository.BookingRepository, uploads cloudinary.Client) *MediaHandler {
	return &MediaHandler{repo: repo, photographers: photographers, bookingRepo: bookingRepo, uploads: uploads}
}

// Upload takes a multipart file and stores it on Cloudinary. Portfolio
// uploads are freestanding; booking uploads must reference the caller's own
// booking and become the delivered gallery.
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media storage not configured"})
		return
	}
	p, err := h.photographers.GetByUserID(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no photographer profile"})
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}
	m := &models.Media{
		PhotographerID: p.ID,
		Type:           "image",
		Title:          c.PostForm("title"),
		Description:    c.PostForm("description"),
		IsPortfolio:    c.PostForm("is_portfolio") == "true",
	}
	folder := fmt.Sprintf("photographers/%d/portfolio", p.ID)
	if v := c.PostForm("booking_id"); v != "" {
		bookingID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking_id"})
			return
		}
		b, err := h.bookingRepo.GetByID(uint(bookingID))
		if err != nil || b.PhotographerID != p.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
			return
		}
		id := uint(bookingID)
		m.BookingID = &id
		m.IsPortfolio = false
		folder = fmt.Sprintf("bookings/%d", bookingID)
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read failed"})
		return
	}
	defer file.Close()

	publicID := uuid.NewString()
	var url, thumb string
	if strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "video/") {
		m.Type = "video"
		url, thumb, err = h.uploads.UploadVideo(c.Request.Context(), file, folder, publicID)
	} else {
		url, thumb, err = h.uploads.UploadImage(c.Request.Context(), file, folder, publicID)
	}
	if err != nil {
		log.Printf("[media] upload failed: photographer=%d err=%v", p.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed"})
		return
	}
	m.URL = url
	m.ThumbnailURL = thumb
	if err := h.repo.Create(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListForBooking shows the delivered gallery to the two parties and admins.
func (h *MediaHandler) ListForBooking(c *gin.Context) {
	bookingID := idParam(c, "id")
	b, err := h.bookingRepo.GetByID(bookingID)
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
	list, err := h.repo.ListByBookingID(bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": list})
}

func (h *MediaHandler) Delete(c *gin.Context) {
	m, err := h.repo.GetByID(idParam(c, "id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
		return
	}
	if middleware.GetRole(c) != domain.RoleAdmin {
		p, err := h.photographers.GetByUserID(middleware.GetUserID(c))
		if err != nil || p.ID != m.PhotographerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
	}
	if err := h.repo.Delete(m.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
