package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RST-ReservationService/pkg/types"
)

func TestRecurringClosureCovers(t *testing.T) {
	closure := &RecurringClosure{
		DayOfWeek: 3, // среда
		StartTime: "12:00",
		EndTime:   "15:00",
		Active:    true,
	}

	tests := []struct {
		name string
		time types.TimeString
		want bool
	}{
		{name: "before window", time: "11:30", want: false},
		{name: "start boundary inclusive", time: "12:00", want: true},
		{name: "inside window", time: "13:30", want: true},
		{name: "end boundary inclusive", time: "15:00", want: true},
		{name: "after window", time: "15:30", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, closure.Covers(tt.time))
		})
	}
}

func TestRecurringClosureCoversFullDay(t *testing.T) {
	closure := &RecurringClosure{StartTime: "00:00", EndTime: "23:59"}

	assert.True(t, closure.Covers("00:00"))
	assert.True(t, closure.Covers("12:30"))
	assert.True(t, closure.Covers("23:59"))
}

func TestRecurringClosureAppliesTo(t *testing.T) {
	// 2026-09-02 - среда (weekday 3)
	wednesday := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	thursday := wednesday.AddDate(0, 0, 1)

	closure := &RecurringClosure{DayOfWeek: 3, StartTime: "00:00", EndTime: "23:59", Active: true}

	assert.True(t, closure.AppliesTo(wednesday))
	assert.False(t, closure.AppliesTo(thursday))
}

func TestSlotAvailabilityHasCapacityFor(t *testing.T) {
	slot := &SlotAvailability{RemainingCapacity: 3}

	assert.True(t, slot.HasCapacityFor(2))
	assert.True(t, slot.HasCapacityFor(3))
	assert.False(t, slot.HasCapacityFor(4))
}
