package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/RST-ReservationService/internal/service/reservations/models"
)

// ==================== Моки ====================

type mockRepo struct {
	byID          map[int64]*domain.Reservation
	updatedID     int64
	updatedStatus domain.ReservationStatus
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, ok := m.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (m *mockRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	return nil, nil
}

func (m *mockRepo) GetByEmail(ctx context.Context, email string) ([]*domain.Reservation, error) {
	return nil, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	if _, ok := m.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	m.updatedID = id
	m.updatedStatus = status
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newService(reservations ...*domain.Reservation) (*mockRepo, *Service) {
	byID := make(map[int64]*domain.Reservation, len(reservations))
	for _, res := range reservations {
		byID[res.ID] = res
	}
	repo := &mockRepo{byID: byID}
	return repo, NewService(repo, noopLogger{})
}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:     7,
		Date:   time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		Time:   "19:00",
		Guests: 2,
		Name:   "Mario Rossi",
		Email:  "mario@example.com",
		Phone:  "+39 333 1234567",
		Status: domain.StatusPending,
	}
}

// ==================== Тесты ====================

func TestGetByID_NotFound(t *testing.T) {
	_, svc := newService()

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	repo, svc := newService(pendingReservation())

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current domain.ReservationStatus
		target  string
	}{
		{name: "pending to completed", current: domain.StatusPending, target: "completed"},
		{name: "confirmed back to pending", current: domain.StatusConfirmed, target: "pending"},
		{name: "cancelled to confirmed", current: domain.StatusCancelled, target: "confirmed"},
		{name: "completed to cancelled", current: domain.StatusCompleted, target: "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := pendingReservation()
			res.Status = tt.current
			_, svc := newService(res)

			_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: tt.target})
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	_, svc := newService(pendingReservation())

	_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "seated"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCancel_Success(t *testing.T) {
	repo, svc := newService(pendingReservation())

	err := svc.Cancel(context.Background(), 7, &models.CancelRequest{Email: "mario@example.com"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.updatedStatus)
}

func TestCancel_EmailCaseInsensitive(t *testing.T) {
	_, svc := newService(pendingReservation())

	err := svc.Cancel(context.Background(), 7, &models.CancelRequest{Email: "Mario@Example.COM"})
	assert.NoError(t, err)
}

func TestCancel_EmailMismatchHidesReservation(t *testing.T) {
	_, svc := newService(pendingReservation())

	err := svc.Cancel(context.Background(), 7, &models.CancelRequest{Email: "other@example.com"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_MissingEmail(t *testing.T) {
	_, svc := newService(pendingReservation())

	err := svc.Cancel(context.Background(), 7, &models.CancelRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	res := pendingReservation()
	res.Status = domain.StatusCancelled
	_, svc := newService(res)

	err := svc.Cancel(context.Background(), 7, &models.CancelRequest{Email: "mario@example.com"})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_CompletedCannotBeCancelled(t *testing.T) {
	res := pendingReservation()
	res.Status = domain.StatusCompleted
	_, svc := newService(res)

	err := svc.Cancel(context.Background(), 7, &models.CancelRequest{Email: "mario@example.com"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	_, svc := newService()

	err := svc.Cancel(context.Background(), 404, &models.CancelRequest{Email: "mario@example.com"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
