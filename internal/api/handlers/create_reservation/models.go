package create_reservation

import (
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	createReservation "github.com/m04kA/RST-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/RST-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date             string  `json:"date"` // "2026-09-15"
	Time             string  `json:"time"` // "19:00"
	Guests           int     `json:"guests"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Occasion         *string `json:"occasion,omitempty"`
	SpecialRequests  *string `json:"specialRequests,omitempty"`
	MarketingConsent bool    `json:"marketingConsent"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID               int64   `json:"id"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Date:             date,
		Time:             slotTime,
		Guests:           r.Guests,
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		Occasion:         r.Occasion,
		SpecialRequests:  r.SpecialRequests,
		MarketingConsent: r.MarketingConsent,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:               resp.ID,
		Date:             resp.Date.Format(domain.DateFormat),
		Time:             resp.Time.String(),
		Guests:           resp.Guests,
		Name:             resp.Name,
		Email:            resp.Email,
		Phone:            resp.Phone,
		Occasion:         resp.Occasion,
		SpecialRequests:  resp.SpecialRequests,
		MarketingConsent: resp.MarketingConsent,
		Status:           resp.Status,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
