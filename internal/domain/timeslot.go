package domain

import (
	"time"

	"github.com/m04kA/RST-ReservationService/pkg/types"
)

// TimeSlot represents a bookable time-of-day entry in the restaurant's catalog
// Deactivation hides the slot from availability without deleting history
type TimeSlot struct {
	ID          int64
	Time        types.TimeString
	MaxCapacity int
	IsLunch     bool
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SlotAvailability represents the computed availability of a time slot on a given date
type SlotAvailability struct {
	SlotID            int64
	Time              types.TimeString
	Available         bool
	RemainingCapacity int
	MaxCapacity       int
	IsActive          bool
	IsLunch           bool
	IsRecurringClosed bool
}

// IsFull returns true if the slot has no remaining capacity
func (s *SlotAvailability) IsFull() bool {
	return s.RemainingCapacity <= 0
}

// HasCapacityFor returns true if the slot can seat the given party
func (s *SlotAvailability) HasCapacityFor(guests int) bool {
	return s.RemainingCapacity >= guests
}
