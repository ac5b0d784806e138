package get_availability

import (
	"github.com/m04kA/RST-ReservationService/internal/domain"
	"github.com/m04kA/RST-ReservationService/pkg/types"
)

// sumGuestsByTime группирует активные бронирования по времени слота
// и суммирует количество гостей
func sumGuestsByTime(reservations []*domain.Reservation) map[types.TimeString]int {
	totals := make(map[types.TimeString]int, len(reservations))
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		totals[res.Time] += res.Guests
	}
	return totals
}

// isRecurringClosed проверяет, попадает ли время слота хотя бы в одно
// еженедельное закрытие (границы окна включительно)
func isRecurringClosed(slotTime types.TimeString, closures []*domain.RecurringClosure) bool {
	for _, closure := range closures {
		if closure.Covers(slotTime) {
			return true
		}
	}
	return false
}

// calculateAvailability вычисляет доступность каждого слота каталога
//
// Слот доступен, если:
// - дата не закрыта целиком (dateClosed)
// - слот не попадает в еженедельное закрытие
// - сумма гостей активных бронирований меньше вместимости
func calculateAvailability(
	slots []*domain.TimeSlot,
	reservations []*domain.Reservation,
	closures []*domain.RecurringClosure,
	dateClosed bool,
) []Slot {
	totals := sumGuestsByTime(reservations)

	result := make([]Slot, len(slots))
	for i, slot := range slots {
		recurringClosed := isRecurringClosed(slot.Time, closures)
		totalGuests := totals[slot.Time]

		remaining := slot.MaxCapacity - totalGuests
		if remaining < 0 {
			remaining = 0
		}

		result[i] = Slot{
			SlotID:            slot.ID,
			Time:              slot.Time,
			Available:         !dateClosed && !recurringClosed && totalGuests < slot.MaxCapacity,
			RemainingCapacity: remaining,
			MaxCapacity:       slot.MaxCapacity,
			IsActive:          slot.IsActive,
			IsLunch:           slot.IsLunch,
			IsRecurringClosed: recurringClosed,
		}
	}

	return result
}
