package service

import (
	"errors"
	"fmt"
	"time"

	"focal/internal/domain"
	"focal/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotParticipant   = errors.New("not a participant in this conversation")
	ErrSelfConversation = errors.New("cannot start a conversation with yourself")
	ErrEmptyMessage     = errors.New("message text is empty")
)

type ConversationStore interface {
	Create(*models.Conversation) error
	GetByID(id uint) (*models.Conversation, error)
	GetBetween(customerID, photographerUserID uint) (*models.Conversation, error)
	ListByUserID(userID uint, limit, offset int) ([]models.Conversation, error)
	TouchLastMessage(conversationID uint, at time.Time) error
	CreateMessage(*models.Message) error
	ListMessages(conversationID uint, limit, offset int) ([]models.Message, error)
	MarkRead(conversationID, readerID uint, at time.Time) error
}

// MessageService owns conversation threads and their messages. One thread per
// customer/photographer pair; Start is idempotent and returns the existing
// thread when there is one.
type MessageService struct {
	conversations ConversationStore
	notify        *NotificationService
}

func NewMessageService(conversations ConversationStore, notify *NotificationService) *MessageService {
	return &MessageService{conversations: conversations, notify: notify}
}

func (s *MessageService) Start(customerID, photographerUserID uint, bookingID *uint) (*models.Conversation, error) {
	if customerID == photographerUserID {
		return nil, ErrSelfConversation
	}
	existing, err := s.conversations.GetBetween(customerID, photographerUserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	c := &models.Conversation{
		CustomerID:     customerID,
		PhotographerID: photographerUserID,
		BookingID:      bookingID,
		LastMessageAt:  time.Now(),
	}
	if err := s.conversations.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get loads a conversation the user participates in.
func (s *MessageService) Get(conversationID, userID uint) (*models.Conversation, error) {
	c, err := s.conversations.GetByID(conversationID)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return c, nil
}

func (s *MessageService) List(userID uint, limit, offset int) ([]models.Conversation, error) {
	return s.conversations.ListByUserID(userID, limit, offset)
}

// Send persists a message, bumps the thread's last-message timestamp and
// notifies the other party.
func (s *MessageService) Send(conversationID, senderID uint, text string) (*models.Message, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}
	c, err := s.Get(conversationID, senderID)
	if err != nil {
		return nil, err
	}
	m := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		Status:         domain.MessageSent,
	}
	if err := s.conversations.CreateMessage(m); err != nil {
		return nil, err
	}
	if err := s.conversations.TouchLastMessage(conversationID, m.CreatedAt); err != nil {
		return nil, err
	}
	recipient := c.CustomerID
	if senderID == c.CustomerID {
		recipient = c.PhotographerID
	}
	s.notify.Notify(recipient, domain.NotifyMessage, "New message",
		fmt.Sprintf("You have a new message in conversation #%d", conversationID),
		map[string]interface{}{"conversation_id": conversationID, "message_id": m.ID})
	return m, nil
}

func (s *MessageService) Messages(conversationID, userID uint, limit, offset int) ([]models.Message, error) {
	if _, err := s.Get(conversationID, userID); err != nil {
		return nil, err
	}
	return s.conversations.ListMessages(conversationID, limit, offset)
}

func (s *MessageService) MarkRead(conversationID, readerID uint) error {
	if _, err := s.Get(conversationID, readerID); err != nil {
		return err
	}
	return s.conversations.MarkRead(conversationID, readerID, time.Now())
}
