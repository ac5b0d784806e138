package domain

import (
	"time"

	"github.com/m04kA/RST-ReservationService/pkg/types"
)

// ClosedDate represents a one-off full-day closure
// Presence of a row blocks every slot on that date
type ClosedDate struct {
	ID        int64
	Date      time.Time
	CreatedAt time.Time
}

// RecurringClosure represents a weekly-recurring closed time window
// DayOfWeek: 0 = Sunday ... 6 = Saturday (как в оригинальной схеме)
type RecurringClosure struct {
	ID        int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers returns true if the slot time falls within [StartTime, EndTime]
// Обе границы включительно
func (c *RecurringClosure) Covers(slotTime types.TimeString) bool {
	return !slotTime.IsBefore(c.StartTime) && !slotTime.IsAfter(c.EndTime)
}

// AppliesTo returns true if the closure is active and matches the date's weekday
func (c *RecurringClosure) AppliesTo(date time.Time) bool {
	return c.Active && int(date.Weekday()) == c.DayOfWeek
}
