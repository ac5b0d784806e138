package domain

import "time"

// MessageStatus represents the processing state of a contact message
type MessageStatus string

const (
	MessageUnread   MessageStatus = "unread"
	MessageRead     MessageStatus = "read"
	MessageReplied  MessageStatus = "replied"
	MessageArchived MessageStatus = "archived"
)

// ContactMessage represents a message submitted through the contact form
type ContactMessage struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
	Status    MessageStatus
	CreatedAt time.Time
}

// ParseMessageStatus валидирует и конвертирует строку в MessageStatus
func ParseMessageStatus(s string) (MessageStatus, bool) {
	status := MessageStatus(s)
	switch status {
	case MessageUnread, MessageRead, MessageReplied, MessageArchived:
		return status, true
	default:
		return "", false
	}
}
