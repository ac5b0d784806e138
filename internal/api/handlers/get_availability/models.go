package get_availability

import (
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/RST-ReservationService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date       string          `json:"date"`
	DateClosed bool            `json:"dateClosed"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot модель доступности одного слота
type AvailableSlot struct {
	SlotID            int64  `json:"slotId"`
	Time              string `json:"time"`
	Available         bool   `json:"available"`
	RemainingCapacity int    `json:"remainingCapacity"`
	MaxCapacity       int    `json:"maxCapacity"`
	IsLunch           bool   `json:"isLunch"`
	IsRecurringClosed bool   `json:"isRecurringClosed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			SlotID:            slot.SlotID,
			Time:              slot.Time.String(),
			Available:         slot.Available,
			RemainingCapacity: slot.RemainingCapacity,
			MaxCapacity:       slot.MaxCapacity,
			IsLunch:           slot.IsLunch,
			IsRecurringClosed: slot.IsRecurringClosed,
		}
	}

	return &AvailabilityResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		DateClosed: resp.DateClosed,
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{Date: date}, nil
}
