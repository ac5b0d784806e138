package models

import (
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

// ReservationResponse HTTP-представление бронирования
type ReservationResponse struct {
	ID               int64   `json:"id"`
	Date             string  `json:"date"` // YYYY-MM-DD
	Time             string  `json:"time"` // HH:MM
	Guests           int     `json:"guests"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Occasion         *string `json:"occasion,omitempty"`
	SpecialRequests  *string `json:"specialRequests,omitempty"`
	MarketingConsent bool    `json:"marketingConsent"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CancelRequest запрос гостя на отмену бронирования
// Email должен совпадать с email, указанным при бронировании
type CancelRequest struct {
	Email string `json:"email"`
}

// FromDomainReservation конвертирует domain модель в HTTP-представление
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:               res.ID,
		Date:             res.Date.Format(domain.DateFormat),
		Time:             res.Time.String(),
		Guests:           res.Guests,
		Name:             res.Name,
		Email:            res.Email,
		Phone:            res.Phone,
		Occasion:         res.Occasion,
		SpecialRequests:  res.SpecialRequests,
		MarketingConsent: res.MarketingConsent,
		Status:           string(res.Status),
		CreatedAt:        res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        res.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список domain моделей
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, len(reservations))
	for i, res := range reservations {
		result[i] = FromDomainReservation(res)
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}
