package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	"github.com/m04kA/RST-ReservationService/internal/integrations/mailer"
	"github.com/m04kA/RST-ReservationService/pkg/ptr"
	"github.com/m04kA/RST-ReservationService/pkg/types"
)

// ==================== Моки ====================

type mockReservationRepo struct {
	active  []*domain.Reservation
	exists  bool
	created *domain.Reservation
}

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	created := *res
	created.ID = 101
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
}

func (m *mockReservationRepo) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	return m.active, nil
}

func (m *mockReservationRepo) ExistsByDateTimeEmail(ctx context.Context, date time.Time, slotTime types.TimeString, email string) (bool, error) {
	return m.exists, nil
}

type mockSlotRepo struct {
	slots []*domain.TimeSlot
}

func (m *mockSlotRepo) ListActive(ctx context.Context) ([]*domain.TimeSlot, error) {
	return m.slots, nil
}

type mockClosureRepo struct {
	dateClosed bool
	closures   []*domain.RecurringClosure
}

func (m *mockClosureRepo) IsDateClosed(ctx context.Context, date time.Time) (bool, error) {
	return m.dateClosed, nil
}

func (m *mockClosureRepo) ListActiveByWeekday(ctx context.Context, dayOfWeek int) ([]*domain.RecurringClosure, error) {
	return m.closures, nil
}

type mockMailerClient struct {
	confirmations int
	adminCopies   int
	err           error
}

func (m *mockMailerClient) SendReservationConfirmation(ctx context.Context, req *mailer.EmailRequest) error {
	m.confirmations++
	return m.err
}

func (m *mockMailerClient) SendAdminCopy(ctx context.Context, req *mailer.EmailRequest) error {
	m.adminCopies++
	return m.err
}

// mockTxManager выполняет функцию без настоящей транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// ==================== Хелперы ====================

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func testFixture() (*mockReservationRepo, *mockSlotRepo, *mockClosureRepo, *mockMailerClient, *UseCase) {
	resRepo := &mockReservationRepo{}
	slotRepo := &mockSlotRepo{slots: []*domain.TimeSlot{
		{ID: 1, Time: "19:00", MaxCapacity: 10, IsActive: true},
	}}
	closureRepo := &mockClosureRepo{}
	mailerClient := &mockMailerClient{}

	uc := NewUseCase(resRepo, slotRepo, closureRepo, mailerClient, &mockTxManager{}, true, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	return resRepo, slotRepo, closureRepo, mailerClient, uc
}

func validRequest() *Request {
	return &Request{
		Date:   time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		Time:   "19:00",
		Guests: 2,
		Name:   "Mario Rossi",
		Email:  "mario@example.com",
		Phone:  "+39 333 1234567",
	}
}

// ==================== Тесты ====================

func TestExecute_Success(t *testing.T) {
	resRepo, _, _, mailerClient, uc := testFixture()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	require.NotNil(t, resRepo.created)
	assert.Equal(t, domain.StatusPending, resRepo.created.Status)

	// Письмо гостю и копия ресторану
	assert.Equal(t, 1, mailerClient.confirmations)
	assert.Equal(t, 1, mailerClient.adminCopies)
}

func TestExecute_MailerFailureDoesNotFailReservation(t *testing.T) {
	_, _, _, mailerClient, uc := testFixture()
	mailerClient.err = mailer.ErrSendFailed

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{name: "zero guests", mutate: func(r *Request) { r.Guests = 0 }, wantErr: ErrInvalidInput},
		{name: "too many guests", mutate: func(r *Request) { r.Guests = 21 }, wantErr: ErrInvalidInput},
		{name: "missing name", mutate: func(r *Request) { r.Name = "" }, wantErr: ErrInvalidInput},
		{name: "bad email", mutate: func(r *Request) { r.Email = "not-an-email" }, wantErr: ErrInvalidInput},
		{name: "missing phone", mutate: func(r *Request) { r.Phone = "" }, wantErr: ErrInvalidInput},
		{name: "missing time", mutate: func(r *Request) { r.Time = "" }, wantErr: ErrInvalidInput},
		{
			name:    "date in the past",
			mutate:  func(r *Request) { r.Date = testNow.AddDate(0, 0, -1) },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "date beyond three months",
			mutate:  func(r *Request) { r.Date = testNow.AddDate(0, 3, 1) },
			wantErr: ErrDateTooFarInFuture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, _, uc := testFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_SameDayAndThreeMonthBoundaryAccepted(t *testing.T) {
	for _, date := range []time.Time{testNow, testNow.AddDate(0, 3, 0)} {
		_, _, _, _, uc := testFixture()
		req := validRequest()
		req.Date = date

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	}
}

func TestExecute_SlotNotInCatalog(t *testing.T) {
	_, _, _, _, uc := testFixture()
	req := validRequest()
	req.Time = "21:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_ClosedDateRejected(t *testing.T) {
	_, _, closureRepo, _, uc := testFixture()
	closureRepo.dateClosed = true

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_RecurringClosureRejected(t *testing.T) {
	_, _, closureRepo, _, uc := testFixture()
	closureRepo.closures = []*domain.RecurringClosure{
		{DayOfWeek: 3, StartTime: "18:00", EndTime: "20:00", Active: true},
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_FullSlotRejected(t *testing.T) {
	resRepo, _, _, _, uc := testFixture()
	resRepo.active = []*domain.Reservation{
		{Time: "19:00", Guests: 10, Status: domain.StatusConfirmed},
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_NotEnoughCapacity(t *testing.T) {
	// Вместимость 10, занято 4+5=9, запрошено 2
	resRepo, _, _, _, uc := testFixture()
	resRepo.active = []*domain.Reservation{
		{Time: "19:00", Guests: 4, Status: domain.StatusPending},
		{Time: "19:00", Guests: 5, Status: domain.StatusConfirmed},
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotEnoughCapacity)
}

func TestExecute_LastSpotAccepted(t *testing.T) {
	resRepo, _, _, _, uc := testFixture()
	resRepo.active = []*domain.Reservation{
		{Time: "19:00", Guests: 9, Status: domain.StatusConfirmed},
	}
	req := validRequest()
	req.Guests = 1

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_DuplicateRejected(t *testing.T) {
	resRepo, _, _, _, uc := testFixture()
	resRepo.exists = true

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateReservation)
}

func TestExecute_OptionalFieldsPassedThrough(t *testing.T) {
	resRepo, _, _, _, uc := testFixture()
	req := validRequest()
	req.Occasion = ptr.Ptr("birthday")
	req.SpecialRequests = ptr.Ptr("window table")
	req.MarketingConsent = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.Occasion)
	assert.Equal(t, "birthday", *resp.Occasion)
	require.NotNil(t, resRepo.created.SpecialRequests)
	assert.Equal(t, "window table", *resRepo.created.SpecialRequests)
	assert.True(t, resRepo.created.MarketingConsent)
}
