package models

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the two legal message roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// ChatMessage is one turn in a conversation. Messages are append-only;
// ordering is by timestamp, ties broken by id assignment order.
type ChatMessage struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ConversationID uint      `gorm:"not null;index" json:"conversation_id"`
	Role           Role      `gorm:"not null" json:"role"`
	Text           string    `gorm:"type:text;not null" json:"text"`
	Timestamp      time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
