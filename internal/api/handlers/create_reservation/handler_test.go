package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReservation "github.com/m04kA/RST-ReservationService/internal/usecase/create_reservation"
)

type mockUseCase struct {
	req  *createReservation.Request
	resp *createReservation.Response
	err  error
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	m.req = req
	return m.resp, m.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *mockUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc := &mockUseCase{resp: &createReservation.Response{
		ID:        101,
		Date:      time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		Time:      "19:00",
		Guests:    2,
		Name:      "Mario Rossi",
		Email:     "mario@example.com",
		Phone:     "+39 333 1234567",
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}}

	rec := doRequest(t, uc, `{
		"date": "2026-09-09",
		"time": "19:00",
		"guests": 2,
		"name": "Mario Rossi",
		"email": "mario@example.com",
		"phone": "+39 333 1234567"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "2026-09-09", resp.Date)
	assert.Equal(t, "19:00", resp.Time)
	assert.Equal(t, "pending", resp.Status)

	// Дата и время распарсились в модель use case
	require.NotNil(t, uc.req)
	assert.Equal(t, 2026, uc.req.Date.Year())
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, `{"date": "09/09/2026", "time": "19:00", "guests": 2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "invalid input", err: createReservation.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "date in past", err: createReservation.ErrInvalidDate, wantCode: http.StatusBadRequest},
		{name: "date too far", err: createReservation.ErrDateTooFarInFuture, wantCode: http.StatusBadRequest},
		{name: "slot not found", err: createReservation.ErrSlotNotFound, wantCode: http.StatusNotFound},
		{name: "slot unavailable", err: createReservation.ErrSlotUnavailable, wantCode: http.StatusConflict},
		{name: "not enough capacity", err: createReservation.ErrNotEnoughCapacity, wantCode: http.StatusConflict},
		{name: "duplicate", err: createReservation.ErrDuplicateReservation, wantCode: http.StatusConflict},
		{name: "internal", err: createReservation.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	body := `{"date": "2026-09-09", "time": "19:00", "guests": 2, "name": "Mario", "email": "m@e.com", "phone": "+39"}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &mockUseCase{err: tt.err}, body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
