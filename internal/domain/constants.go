package domain

// Business validation constants
const (
	MinGuests = 1
	MaxGuests = 20

	// Бронирования принимаются максимум на 3 месяца вперед
	MaxAdvanceBookingMonths = 3

	MinSlotCapacity = 1
	MaxSlotCapacity = 200

	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday

	MaxNameLength            = 200
	MaxOccasionLength        = 200
	MaxSpecialRequestsLength = 1000
	MaxSubjectLength         = 200
	MaxMessageLength         = 5000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, учитываемых при подсчёте занятых мест
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
