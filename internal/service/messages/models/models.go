package models

import (
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

// CreateMessageRequest запрос контактной формы
type CreateMessageRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// UpdateMessageStatusRequest запрос на смену статуса сообщения
type UpdateMessageStatusRequest struct {
	Status string `json:"status"`
}

// MessageResponse HTTP-представление сообщения
type MessageResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// MessageListResponse список сообщений
type MessageListResponse struct {
	Messages []*MessageResponse `json:"messages"`
	Total    int                `json:"total"`
}

// FromDomainMessage конвертирует domain модель сообщения
func FromDomainMessage(msg *domain.ContactMessage) *MessageResponse {
	return &MessageResponse{
		ID:        msg.ID,
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Status:    string(msg.Status),
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainMessageList конвертирует список сообщений
func FromDomainMessageList(messages []*domain.ContactMessage) *MessageListResponse {
	result := make([]*MessageResponse, len(messages))
	for i, msg := range messages {
		result[i] = FromDomainMessage(msg)
	}
	return &MessageListResponse{Messages: result, Total: len(result)}
}
