package service

import (
	"encoding/json"
	"log"

	"focal/internal/models"
)

type NotificationStore interface {
	Create(*models.Notification) error
}

// Broadcaster pushes a payload to every live connection of one user.
type Broadcaster interface {
	BroadcastToUser(userID uint, payload interface{})
}

// NotificationService writes in-app notification rows and, when a hub is
// attached, pushes them over any open websocket. Delivery failures are logged
// and never surfaced to the triggering request.
type NotificationService struct {
	store NotificationStore
	hub   Broadcaster
}

func NewNotificationService(store NotificationStore, hub Broadcaster) *NotificationService {
	return &NotificationService{store: store, hub: hub}
}

func (s *NotificationService) Notify(userID uint, notifType, title, body string, data map[string]interface{}) {
	if s == nil || s.store == nil {
		return
	}
	payload := ""
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			payload = string(b)
		}
	}
	n := &models.Notification{
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
		Data:   payload,
	}
	if err := s.store.Create(n); err != nil {
		log.Printf("[notify] create failed: user=%d type=%s err=%v", userID, notifType, err)
		return
	}
	if s.hub != nil {
		s.hub.BroadcastToUser(userID, n)
	}
}
