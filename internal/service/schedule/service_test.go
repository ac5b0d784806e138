package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	"github.com/m04kA/RST-ReservationService/internal/infra/storage/closure"
	"github.com/m04kA/RST-ReservationService/internal/infra/storage/timeslot"
	"github.com/m04kA/RST-ReservationService/internal/service/schedule/models"
	"github.com/m04kA/RST-ReservationService/pkg/ptr"
)

// ==================== Моки ====================

type mockSlotRepo struct {
	created *domain.TimeSlot
}

func (m *mockSlotRepo) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	created := *slot
	created.ID = 11
	m.created = &created
	return &created, nil
}

func (m *mockSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return nil, timeslot.ErrTimeSlotNotFound
}

func (m *mockSlotRepo) List(ctx context.Context) ([]*domain.TimeSlot, error) {
	return []*domain.TimeSlot{{ID: 1, Time: "19:00", MaxCapacity: 40, IsActive: true}}, nil
}

func (m *mockSlotRepo) Update(ctx context.Context, id int64, update *timeslot.SlotUpdate) (*domain.TimeSlot, error) {
	return nil, timeslot.ErrTimeSlotNotFound
}

func (m *mockSlotRepo) Delete(ctx context.Context, id int64) error {
	return timeslot.ErrTimeSlotNotFound
}

type mockClosureRepo struct {
	createdClosure *domain.RecurringClosure
	addedDate      time.Time
}

func (m *mockClosureRepo) ListClosedDates(ctx context.Context) ([]*domain.ClosedDate, error) {
	return nil, nil
}

func (m *mockClosureRepo) AddClosedDate(ctx context.Context, date time.Time) (*domain.ClosedDate, error) {
	m.addedDate = date
	return &domain.ClosedDate{ID: 1, Date: date}, nil
}

func (m *mockClosureRepo) RemoveClosedDate(ctx context.Context, date time.Time) error {
	return closure.ErrClosedDateNotFound
}

func (m *mockClosureRepo) ListRecurringClosures(ctx context.Context) ([]*domain.RecurringClosure, error) {
	return nil, nil
}

func (m *mockClosureRepo) CreateRecurringClosure(ctx context.Context, rc *domain.RecurringClosure) (*domain.RecurringClosure, error) {
	created := *rc
	created.ID = 21
	m.createdClosure = &created
	return &created, nil
}

func (m *mockClosureRepo) UpdateRecurringClosure(ctx context.Context, id int64, update *closure.ClosureUpdate) (*domain.RecurringClosure, error) {
	return nil, closure.ErrClosureNotFound
}

func (m *mockClosureRepo) DeleteRecurringClosure(ctx context.Context, id int64) error {
	return closure.ErrClosureNotFound
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newService() (*mockSlotRepo, *mockClosureRepo, *Service) {
	slotRepo := &mockSlotRepo{}
	closureRepo := &mockClosureRepo{}
	return slotRepo, closureRepo, NewService(slotRepo, closureRepo, noopLogger{})
}

// ==================== Слоты времени ====================

func TestCreateTimeSlot_Success(t *testing.T) {
	slotRepo, _, svc := newService()

	resp, err := svc.CreateTimeSlot(context.Background(), &models.CreateTimeSlotRequest{
		Time:        "12:30",
		MaxCapacity: 30,
		IsLunch:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "12:30", resp.Time)
	assert.True(t, resp.IsLunch)
	// Новый слот сразу активен
	assert.True(t, slotRepo.created.IsActive)
}

func TestCreateTimeSlot_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateTimeSlotRequest
	}{
		{name: "bad time format", req: models.CreateTimeSlotRequest{Time: "noon", MaxCapacity: 30}},
		{name: "time with seconds", req: models.CreateTimeSlotRequest{Time: "12:30:00", MaxCapacity: 30}},
		{name: "zero capacity", req: models.CreateTimeSlotRequest{Time: "12:30", MaxCapacity: 0}},
		{name: "capacity above limit", req: models.CreateTimeSlotRequest{Time: "12:30", MaxCapacity: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := newService()
			_, err := svc.CreateTimeSlot(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateTimeSlot_RequiresAtLeastOneField(t *testing.T) {
	_, _, svc := newService()

	_, err := svc.UpdateTimeSlot(context.Background(), 1, &models.UpdateTimeSlotRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateTimeSlot_NotFound(t *testing.T) {
	_, _, svc := newService()

	_, err := svc.UpdateTimeSlot(context.Background(), 404, &models.UpdateTimeSlotRequest{
		IsActive: ptr.Ptr(false),
	})
	assert.ErrorIs(t, err, ErrTimeSlotNotFound)
}

// ==================== Разовые закрытия ====================

func TestAddClosedDate_Success(t *testing.T) {
	_, closureRepo, svc := newService()

	resp, err := svc.AddClosedDate(context.Background(), &models.AddClosedDateRequest{Date: "2026-12-25"})
	require.NoError(t, err)

	assert.Equal(t, "2026-12-25", resp.Date)
	assert.Equal(t, 2026, closureRepo.addedDate.Year())
}

func TestAddClosedDate_InvalidDate(t *testing.T) {
	_, _, svc := newService()

	_, err := svc.AddClosedDate(context.Background(), &models.AddClosedDateRequest{Date: "25/12/2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemoveClosedDate_NotFound(t *testing.T) {
	_, _, svc := newService()

	err := svc.RemoveClosedDate(context.Background(), "2026-12-25")
	assert.ErrorIs(t, err, ErrClosedDateNotFound)
}

// ==================== Еженедельные закрытия ====================

func TestCreateRecurringClosure_Success(t *testing.T) {
	_, closureRepo, svc := newService()

	resp, err := svc.CreateRecurringClosure(context.Background(), &models.CreateRecurringClosureRequest{
		DayOfWeek: 3,
		StartTime: "12:00",
		EndTime:   "15:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(21), resp.ID)
	// Активно по умолчанию
	assert.True(t, resp.Active)
	assert.True(t, closureRepo.createdClosure.Active)
}

func TestCreateRecurringClosure_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateRecurringClosureRequest
	}{
		{name: "negative day", req: models.CreateRecurringClosureRequest{DayOfWeek: -1, StartTime: "12:00", EndTime: "15:00"}},
		{name: "day above saturday", req: models.CreateRecurringClosureRequest{DayOfWeek: 7, StartTime: "12:00", EndTime: "15:00"}},
		{name: "bad start time", req: models.CreateRecurringClosureRequest{DayOfWeek: 3, StartTime: "noon", EndTime: "15:00"}},
		{name: "bad end time", req: models.CreateRecurringClosureRequest{DayOfWeek: 3, StartTime: "12:00", EndTime: "late"}},
		{name: "inverted window", req: models.CreateRecurringClosureRequest{DayOfWeek: 3, StartTime: "15:00", EndTime: "12:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := newService()
			_, err := svc.CreateRecurringClosure(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateRecurringClosure_ExplicitlyInactive(t *testing.T) {
	_, closureRepo, svc := newService()

	_, err := svc.CreateRecurringClosure(context.Background(), &models.CreateRecurringClosureRequest{
		DayOfWeek: 0,
		StartTime: "00:00",
		EndTime:   "23:59",
		Active:    ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, closureRepo.createdClosure.Active)
}

func TestUpdateRecurringClosure_RequiresAtLeastOneField(t *testing.T) {
	_, _, svc := newService()

	_, err := svc.UpdateRecurringClosure(context.Background(), 1, &models.UpdateRecurringClosureRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteRecurringClosure_NotFound(t *testing.T) {
	_, _, svc := newService()

	err := svc.DeleteRecurringClosure(context.Background(), 404)
	assert.ErrorIs(t, err, ErrClosureNotFound)
}
