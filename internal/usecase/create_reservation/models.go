package create_reservation

import (
	"time"

	"github.com/m04kA/RST-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date             time.Time        // Дата бронирования (без времени)
	Time             types.TimeString // Время слота (например, "19:00")
	Guests           int              // Количество гостей (1-20)
	Name             string           // Имя гостя
	Email            string           // Email гостя
	Phone            string           // Телефон гостя
	Occasion         *string          // Повод (опционально)
	SpecialRequests  *string          // Особые пожелания (опционально)
	MarketingConsent bool             // Согласие на рассылку
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64
	Date             time.Time
	Time             types.TimeString
	Guests           int
	Name             string
	Email            string
	Phone            string
	Occasion         *string
	SpecialRequests  *string
	MarketingConsent bool
	Status           string // Всегда "pending" при создании
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
