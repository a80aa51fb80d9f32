package repository

import (
	"time"

	"focal/internal/models"

	"gorm.io/gorm"
)

type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func (r *ConversationRepository) Create(c *models.Conversation) error {
	return r.db.Create(c).Error
}

func (r *ConversationRepository) GetByID(id uint) (*models.Conversation, error) {
	var c models.Conversation
	err := r.db.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetBetween finds the existing thread between a customer and a photographer
// user, if any.
func (r *ConversationRepository) GetBetween(customerID, photographerUserID uint) (*models.Conversation, error) {
	var c models.Conversation
	err := r.db.Where("customer_id = ? AND photographer_id = ?", customerID, photographerUserID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConversationRepository) ListByUserID(userID uint, limit, offset int) ([]models.Conversation, error) {
	var list []models.Conversation
	err := r.db.Where("customer_id = ? OR photographer_id = ?", userID, userID).
		Order("last_message_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *ConversationRepository) TouchLastMessage(conversationID uint, at time.Time) error {
	return r.db.Model(&models.Conversation{}).Where("id = ?", conversationID).
		Update("last_message_at", at).Error
}

func (r *ConversationRepository) CreateMessage(m *models.Message) error {
	return r.db.Create(m).Error
}

func (r *ConversationRepository) ListMessages(conversationID uint, limit, offset int) ([]models.Message, error) {
	var list []models.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// MarkRead marks all messages sent to readerID in the conversation as read.
func (r *ConversationRepository) MarkRead(conversationID, readerID uint, at time.Time) error {
	return r.db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND status <> ?", conversationID, readerID, "read").
		Updates(map[string]interface{}{"status": "read", "read_at": at}).Error
}
