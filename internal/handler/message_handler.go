package handler

import (
	"errors"
	"net/http"

	"focal/internal/middleware"
	"focal/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MessageHandler struct {
	svc *service.MessageService
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

type StartConversationRequest struct {
	PhotographerUserID uint  `json:"photographer_user_id" binding:"required"`
	BookingID          *uint `json:"booking_id"`
}

func (h *MessageHandler) Start(c *gin.Context) {
	var req StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	conv, err := h.svc.Start(middleware.GetUserID(c), req.PhotographerUserID, req.BookingID)
	if err != nil {
		if errors.Is(err, service.ErrSelfConversation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "start conversation failed"})
		return
	}
	c.JSON(http.StatusCreated, conv)
}

func (h *MessageHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.svc.List(middleware.GetUserID(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": list})
}

func (h *MessageHandler) Messages(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.svc.Messages(idParam(c, "id"), middleware.GetUserID(c), limit, offset)
	if err != nil {
		h.writeConversationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": list})
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required,max=5000"`
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.svc.Send(idParam(c, "id"), middleware.GetUserID(c), req.Text)
	if err != nil {
		h.writeConversationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.svc.MarkRead(idParam(c, "id"), middleware.GetUserID(c)); err != nil {
		h.writeConversationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *MessageHandler) writeConversationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
	case errors.Is(err, service.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "message operation failed"})
	}
}
