package service

import (
	"errors"
	"testing"
	"time"

	"focal/internal/models"

	"gorm.io/gorm"
)

type fakeConversationStore struct {
	conversations map[uint]*models.Conversation
	messages      []*models.Message
	nextID        uint
	nextMsgID     uint
}

func newFakeConversationStore() *fakeConversationStore {
	return &fakeConversationStore{conversations: make(map[uint]*models.Conversation)}
}

func (f *fakeConversationStore) Create(c *models.Conversation) error {
	f.nextID++
	c.ID = f.nextID
	f.conversations[c.ID] = c
	return nil
}

func (f *fakeConversationStore) GetByID(id uint) (*models.Conversation, error) {
	c, ok := f.conversations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeConversationStore) GetBetween(customerID, photographerUserID uint) (*models.Conversation, error) {
	for _, c := range f.conversations {
		if c.CustomerID == customerID && c.PhotographerID == photographerUserID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeConversationStore) ListByUserID(userID uint, limit, offset int) ([]models.Conversation, error) {
	var list []models.Conversation
	for _, c := range f.conversations {
		if c.HasParticipant(userID) {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (f *fakeConversationStore) TouchLastMessage(conversationID uint, at time.Time) error {
	if c, ok := f.conversations[conversationID]; ok {
		c.LastMessageAt = at
	}
	return nil
}

func (f *fakeConversationStore) CreateMessage(m *models.Message) error {
	f.nextMsgID++
	m.ID = f.nextMsgID
	m.CreatedAt = time.Now()
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeConversationStore) ListMessages(conversationID uint, limit, offset int) ([]models.Message, error) {
	var list []models.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			list = append(list, *m)
		}
	}
	return list, nil
}

func (f *fakeConversationStore) MarkRead(conversationID, readerID uint, at time.Time) error {
	for _, m := range f.messages {
		if m.ConversationID == conversationID && m.SenderID != readerID && m.Status != "read" {
			m.Status = "read"
			m.ReadAt = &at
		}
	}
	return nil
}

func TestStartConversationIsIdempotent(t *testing.T) {
	store := newFakeConversationStore()
	svc := NewMessageService(store, nil)

	c1, err := svc.Start(5, 10, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	c2, err := svc.Start(5, 10, nil)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if c1.ID != c2.ID {
		t.Fatalf("starting twice should return the same thread: %d vs %d", c1.ID, c2.ID)
	}
	if _, err := svc.Start(5, 5, nil); !errors.Is(err, ErrSelfConversation) {
		t.Fatalf("self conversation: expected ErrSelfConversation, got %v", err)
	}
}

func TestSendRequiresParticipant(t *testing.T) {
	store := newFakeConversationStore()
	svc := NewMessageService(store, nil)
	c, err := svc.Start(5, 10, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := svc.Send(c.ID, 99, "hi"); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("stranger send: expected ErrNotParticipant, got %v", err)
	}
	if _, err := svc.Send(c.ID, 5, ""); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("empty text: expected ErrEmptyMessage, got %v", err)
	}

	m, err := svc.Send(c.ID, 5, "hello")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if m.SenderID != 5 || m.Status != "sent" {
		t.Fatalf("message wrong: %+v", m)
	}
	if !c.LastMessageAt.Equal(m.CreatedAt) {
		t.Fatalf("send should bump the thread's last message time")
	}
}

func TestMarkReadOnlyTouchesOtherPartysMessages(t *testing.T) {
	store := newFakeConversationStore()
	svc := NewMessageService(store, nil)
	c, err := svc.Start(5, 10, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.Send(c.ID, 5, "from customer"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.Send(c.ID, 10, "from photographer"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := svc.MarkRead(c.ID, 5); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	for _, m := range store.messages {
		if m.SenderID == 10 && m.Status != "read" {
			t.Fatalf("photographer's message should be read, got %s", m.Status)
		}
		if m.SenderID == 5 && m.Status == "read" {
			t.Fatalf("own messages must not be marked read by the reader")
		}
	}
}
