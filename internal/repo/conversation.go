package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"synthesistalk-backend/internal/apperr"
	"synthesistalk-backend/internal/models"
)

type ConversationRepo struct {
	db *gorm.DB
}

type ConversationRepoInterface interface {
	ListByUser(userID uint) ([]models.Conversation, error)
	Create(userID uint, title string) (*models.Conversation, error)
	Delete(userID, conversationID uint) error
	GetOwned(userID, conversationID uint) (*models.Conversation, error)
	ListMessages(conversationID uint) ([]models.ChatMessage, error)
	AppendMessage(conversationID uint, role models.Role, text string) (*models.ChatMessage, error)
}

func NewConversationRepository(db *gorm.DB) ConversationRepoInterface {
	return &ConversationRepo{db: db}
}

func (r *ConversationRepo) ListByUser(userID uint) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&convs).Error
	return convs, err
}

func (r *ConversationRepo) Create(userID uint, title string) (*models.Conversation, error) {
	if strings.TrimSpace(title) == "" {
		title = models.DefaultConversationTitle
	}
	conv := &models.Conversation{UserID: userID, Title: title}
	if err := r.db.Create(conv).Error; err != nil {
		return nil, err
	}
	return conv, nil
}

// GetOwned resolves a conversation only if it belongs to userID. A missing
// conversation and someone else's conversation are indistinguishable to the
// caller, both are NotFound.
func (r *ConversationRepo) GetOwned(userID, conversationID uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.Where("id = ? AND user_id = ?", conversationID, userID).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.CodeNotFound, "Conversation not found")
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// Delete removes an owned conversation and all of its messages in one
// transaction.
func (r *ConversationRepo) Delete(userID, conversationID uint) error {
	conv, err := r.GetOwned(userID, conversationID)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", conv.ID).
			Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(conv).Error
	})
}

func (r *ConversationRepo) ListMessages(conversationID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("timestamp ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *ConversationRepo) AppendMessage(conversationID uint, role models.Role, text string) (*models.ChatMessage, error) {
	if !role.Valid() {
		return nil, apperr.New(apperr.CodeInvalidArgument, "Message role must be 'user' or 'assistant'")
	}
	if text == "" {
		return nil, apperr.New(apperr.CodeInvalidArgument, "Message text must not be empty")
	}

	msg := &models.ChatMessage{
		ConversationID: conversationID,
		Role:           role,
		Text:           text,
	}
	if err := r.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}
