package handler

import (
	"errors"
	"log"
	"net/http"

	"focal/internal/domain"
	"focal/internal/middleware"
	"focal/internal/models"
	"focal/internal/repository"
	"focal/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	svc           *service.PaymentService
	paymentRepo   *repository.PaymentRepository
	refundRepo    *repository.RefundRepository
	bookingRepo   *repository.BookingRepository
	photographers *repository.PhotographerRepository
	adminLogRepo  *repository.AdminLogRepository
}

func NewPaymentHandler(
	svc *service.PaymentService,
	paymentRepo *repository.PaymentRepository,
	refundRepo *repository.RefundRepository,
	bookingRepo *repository.BookingRepository,
	photographers *repository.PhotographerRepository,
	adminLogRepo *repository.AdminLogRepository,
) *PaymentHandler {
	return &PaymentHandler{
		svc:           svc,
		paymentRepo:   paymentRepo,
		refundRepo:    refundRepo,
		bookingRepo:   bookingRepo,
		photographers: photographers,
		adminLogRepo:  adminLogRepo,
	}
}

// GetForBooking returns the payment attached to a booking, visible to the two
// parties and admins.
func (h *PaymentHandler) GetForBooking(c *gin.Context) {
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
	payment, err := h.paymentRepo.GetByBookingID(bookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no payment for this booking"})
		return
	}
	c.JSON(http.StatusOK, payment)
}

type GatewayWebhookRequest struct {
	BookingID  uint   `json:"booking_id" binding:"required"`
	GatewayRef string `json:"gateway_ref"`
	Status     string `json:"status" binding:"required"`
}

// GatewayWebhook receives payment status callbacks. The route is unauthenticated
// but rate limited; the gateway signs nothing in this minimal integration, so
// the booking ID + ref pair is the only check.
func (h *PaymentHandler) GatewayWebhook(c *gin.Context) {
	var req GatewayWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.ApplyGatewayEvent(req.BookingID, req.GatewayRef, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		case errors.Is(err, service.ErrUnknownGatewayStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[payment] webhook failed: booking=%d err=%v", req.BookingID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook failed"})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListRefunds is the admin queue, filtered by status (default pending).
func (h *PaymentHandler) ListRefunds(c *gin.Context) {
	status := c.DefaultQuery("status", domain.RefundPending)
	limit, offset := pagination(c)
	list, err := h.refundRepo.ListByStatus(status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"refunds": list})
}

func (h *PaymentHandler) ApproveRefund(c *gin.Context) {
	rf, err := h.svc.ApproveRefund(idParam(c, "id"))
	if err != nil {
		h.writeRefundError(c, err)
		return
	}
	h.logAdminAction(c, domain.AdminActionBookingRefunded, "refund", rf.ID, "approved")
	c.JSON(http.StatusOK, rf)
}

func (h *PaymentHandler) RejectRefund(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"max=500"`
	}
	_ = c.ShouldBindJSON(&req)
	rf, err := h.svc.RejectRefund(idParam(c, "id"), req.Reason)
	if err != nil {
		h.writeRefundError(c, err)
		return
	}
	c.JSON(http.StatusOK, rf)
}

func (h *PaymentHandler) CompleteRefund(c *gin.Context) {
	rf, err := h.svc.CompleteRefund(idParam(c, "id"))
	if err != nil {
		h.writeRefundError(c, err)
		return
	}
	h.logAdminAction(c, domain.AdminActionBookingRefunded, "refund", rf.ID, "completed")
	c.JSON(http.StatusOK, rf)
}

func (h *PaymentHandler) writeRefundError(c *gin.Context, err error) {
	var te *domain.TransitionError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "refund not found"})
	case errors.Is(err, service.ErrRefundNotActionable), errors.As(err, &te):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "refund operation failed"})
	}
}

func (h *PaymentHandler) logAdminAction(c *gin.Context, action, entityType string, entityID uint, notes string) {
	if h.adminLogRepo == nil {
		return
	}
	_ = h.adminLogRepo.Create(&models.AdminLog{
		AdminID:    middleware.GetUserID(c),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Notes:      notes,
		IP:         c.ClientIP(),
	})
}
