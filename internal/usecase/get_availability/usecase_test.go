package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

// ==================== Моки ====================

type mockSlotRepo struct {
	slots []*domain.TimeSlot
	err   error
}

func (m *mockSlotRepo) ListActive(ctx context.Context) ([]*domain.TimeSlot, error) {
	return m.slots, m.err
}

type mockReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (m *mockReservationRepo) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	return m.reservations, m.err
}

type mockClosureRepo struct {
	dateClosed bool
	closures   []*domain.RecurringClosure
	err        error
}

func (m *mockClosureRepo) IsDateClosed(ctx context.Context, date time.Time) (bool, error) {
	return m.dateClosed, m.err
}

func (m *mockClosureRepo) ListActiveByWeekday(ctx context.Context, dayOfWeek int) ([]*domain.RecurringClosure, error) {
	return m.closures, m.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newUseCase(slots *mockSlotRepo, res *mockReservationRepo, cl *mockClosureRepo) *UseCase {
	return NewUseCase(slots, res, cl, noopLogger{})
}

// ==================== Тесты ====================

func testDate() time.Time {
	// 2026-09-09 - среда
	return time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
}

func TestExecute_EmptyDateRejected(t *testing.T) {
	uc := newUseCase(&mockSlotRepo{}, &mockReservationRepo{}, &mockClosureRepo{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_AllSlotsFreeOnEmptyDate(t *testing.T) {
	uc := newUseCase(
		&mockSlotRepo{slots: []*domain.TimeSlot{
			{ID: 1, Time: "12:00", MaxCapacity: 30, IsLunch: true, IsActive: true},
			{ID: 2, Time: "19:00", MaxCapacity: 40, IsActive: true},
		}},
		&mockReservationRepo{},
		&mockClosureRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	assert.False(t, resp.DateClosed)
	require.Len(t, resp.Slots, 2)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Equal(t, slot.MaxCapacity, slot.RemainingCapacity)
	}
	assert.True(t, resp.Slots[0].IsLunch)
}

func TestExecute_RemainingCapacityCountsActiveGuests(t *testing.T) {
	uc := newUseCase(
		&mockSlotRepo{slots: []*domain.TimeSlot{
			{ID: 1, Time: "19:00", MaxCapacity: 10, IsActive: true},
		}},
		&mockReservationRepo{reservations: []*domain.Reservation{
			{Time: "19:00", Guests: 4, Status: domain.StatusPending},
			{Time: "19:00", Guests: 3, Status: domain.StatusConfirmed},
			// Отменённые и завершённые не занимают места
			{Time: "19:00", Guests: 5, Status: domain.StatusCancelled},
			// Другое время не влияет
			{Time: "20:00", Guests: 2, Status: domain.StatusConfirmed},
		}},
		&mockClosureRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].Available)
	assert.Equal(t, 3, resp.Slots[0].RemainingCapacity)
}

func TestExecute_FullSlotUnavailable(t *testing.T) {
	uc := newUseCase(
		&mockSlotRepo{slots: []*domain.TimeSlot{
			{ID: 1, Time: "19:00", MaxCapacity: 6, IsActive: true},
		}},
		&mockReservationRepo{reservations: []*domain.Reservation{
			{Time: "19:00", Guests: 6, Status: domain.StatusConfirmed},
		}},
		&mockClosureRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	assert.False(t, resp.Slots[0].Available)
	assert.Equal(t, 0, resp.Slots[0].RemainingCapacity)
}

func TestExecute_OverbookedSlotClampedToZero(t *testing.T) {
	uc := newUseCase(
		&mockSlotRepo{slots: []*domain.TimeSlot{
			{ID: 1, Time: "19:00", MaxCapacity: 4, IsActive: true},
		}},
		&mockReservationRepo{reservations: []*domain.Reservation{
			{Time: "19:00", Guests: 6, Status: domain.StatusConfirmed},
		}},
		&mockClosureRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	assert.False(t, resp.Slots[0].Available)
	assert.Equal(t, 0, resp.Slots[0].RemainingCapacity)
}

func TestExecute_ClosedDateBlocksEverything(t *testing.T) {
	uc := newUseCase(
		&mockSlotRepo{slots: []*domain.TimeSlot{
			{ID: 1, Time: "12:00", MaxCapacity: 30, IsActive: true},
			{ID: 2, Time: "19:00", MaxCapacity: 40, IsActive: true},
		}},
		&mockReservationRepo{},
		&mockClosureRepo{dateClosed: true},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	assert.True(t, resp.DateClosed)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Available)
	}
}

func TestExecute_RecurringClosureCoversSlots(t *testing.T) {
	uc := newUseCase(
		&mockSlotRepo{slots: []*domain.TimeSlot{
			{ID: 1, Time: "12:00", MaxCapacity: 30, IsActive: true},
			{ID: 2, Time: "19:00", MaxCapacity: 40, IsActive: true},
		}},
		&mockReservationRepo{},
		&mockClosureRepo{closures: []*domain.RecurringClosure{
			// Закрыт обед по средам
			{DayOfWeek: 3, StartTime: "11:00", EndTime: "15:00", Active: true},
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	assert.False(t, resp.Slots[0].Available)
	assert.True(t, resp.Slots[0].IsRecurringClosed)
	assert.True(t, resp.Slots[1].Available)
	assert.False(t, resp.Slots[1].IsRecurringClosed)
}

func TestExecute_FullDayRecurringClosure(t *testing.T) {
	uc := newUseCase(
		&mockSlotRepo{slots: []*domain.TimeSlot{
			{ID: 1, Time: "12:00", MaxCapacity: 30, IsActive: true},
			{ID: 2, Time: "19:00", MaxCapacity: 40, IsActive: true},
		}},
		&mockReservationRepo{},
		&mockClosureRepo{closures: []*domain.RecurringClosure{
			{DayOfWeek: 3, StartTime: "00:00", EndTime: "23:59", Active: true},
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.False(t, slot.Available)
		assert.True(t, slot.IsRecurringClosed)
	}
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	uc := newUseCase(
		&mockSlotRepo{err: errors.New("db down")},
		&mockReservationRepo{},
		&mockClosureRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	assert.ErrorIs(t, err, ErrInternal)
}
