package models

import "time"

// DefaultConversationTitle replaces a blank title at creation.
const DefaultConversationTitle = "New Chat"

// Conversation is a user-owned thread of chat messages. Deleting it
// cascades to its messages.
type Conversation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	CreatedAt time.Time `json:"created_at"`

	Messages []ChatMessage `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"-"`
}
