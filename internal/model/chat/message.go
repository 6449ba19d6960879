package chat

import (
	"fmt"
	"time"
)

// Role identifies the speaker of a message. Only the two values below are
// valid; anything else is rejected at the request boundary.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the closed enum values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is a single conversational turn. Immutable once created; identity
// is the process-unique MessageID.
type Message struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	MessageID string `json:"message_id"`
	Error     bool   `json:"error,omitempty"`
}

// NewUserMessage stamps a user turn with the current time.
func NewUserMessage(content string) Message {
	return newMessage(RoleUser, content, "user")
}

// NewAssistantMessage stamps an assistant turn with the current time.
func NewAssistantMessage(content string) Message {
	return newMessage(RoleAssistant, content, "isha")
}

// NewErrorMessage stamps an assistant turn produced by the error path.
func NewErrorMessage(content string) Message {
	msg := newMessage(RoleAssistant, content, "isha_error")
	msg.Error = true
	return msg
}

func newMessage(role Role, content, idPrefix string) Message {
	now := time.Now().UTC()
	return Message{
		Role:      role,
		Content:   content,
		Timestamp: now.Format(time.RFC3339),
		MessageID: fmt.Sprintf("%s_%d", idPrefix, now.UnixNano()),
	}
}
