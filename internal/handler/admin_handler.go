package handler

import (
	"net/http"

	"focal/internal/domain"
	"focal/internal/middleware"
	"focal/internal/models"
	"focal/internal/repository"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	userRepo     *repository.UserRepository
	bookingRepo  *repository.BookingRepository
	adminLogRepo *repository.AdminLogRepository
}

func NewAdminHandler(userRepo *repository.UserRepository, bookingRepo *repository.BookingRepository, adminLogRepo *repository.AdminLogRepository) *AdminHandler {
	return &AdminHandler{userRepo: userRepo, bookingRepo: bookingRepo, adminLogRepo: adminLogRepo}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.userRepo.List(c.Query("role"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": list})
}

// SuspendUser deactivates the account and kills its session: the stored
// refresh token is cleared, so the user is out as soon as the access token
// expires.
func (h *AdminHandler) SuspendUser(c *gin.Context) {
	id := idParam(c, "id")
	u, err := h.userRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if u.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot suspend an admin"})
		return
	}
	if err := h.userRepo.SetActive(id, false); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	_ = h.userRepo.SetRefreshToken(id, "")
	h.logAction(c, domain.AdminActionUserSuspended, id, c.Query("reason"))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AdminHandler) ActivateUser(c *gin.Context) {
	id := idParam(c, "id")
	if _, err := h.userRepo.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err := h.userRepo.SetActive(id, true); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	h.logAction(c, domain.AdminActionUserActivated, id, "")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListBookings lets admins inspect the pipeline by status.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	status := c.DefaultQuery("status", domain.BookingPending)
	limit, offset := pagination(c)
	list, err := h.bookingRepo.ListByStatus(status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

func (h *AdminHandler) ListLogs(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.adminLogRepo.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": list})
}

func (h *AdminHandler) logAction(c *gin.Context, action string, entityID uint, notes string) {
	_ = h.adminLogRepo.Create(&models.AdminLog{
		AdminID:    middleware.GetUserID(c),
		Action:     action,
		EntityType: "user",
		EntityID:   entityID,
		Notes:      notes,
		IP:         c.ClientIP(),
	})
}
