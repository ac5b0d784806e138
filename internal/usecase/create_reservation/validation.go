package create_reservation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

// emailRegexp грубая проверка формата email, как в форме бронирования
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d",
			ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if !emailRegexp.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	if req.Occasion != nil && len(*req.Occasion) > domain.MaxOccasionLength {
		return fmt.Errorf("%w: occasion is too long", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests are too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата в окне [сегодня, сегодня + 3 месяца]
func validateDate(reservationDate time.Time, now time.Time) error {
	dateOnly := truncateToDay(reservationDate)
	nowOnly := truncateToDay(now)

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	maxDate := nowOnly.AddDate(0, domain.MaxAdvanceBookingMonths, 0)
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: reservations can be made up to %d months in advance",
			ErrDateTooFarInFuture, domain.MaxAdvanceBookingMonths)
	}

	return nil
}

// truncateToDay обнуляет время, чтобы сравнивать только даты
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
