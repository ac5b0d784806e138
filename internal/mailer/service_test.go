package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-ReservationService/internal/integrations/resend"
	"github.com/m04kA/RST-ReservationService/pkg/ptr"
)

// ==================== Моки ====================

type mockSender struct {
	last *resend.SendEmailRequest
	err  error
}

func (m *mockSender) SendEmail(ctx context.Context, req *resend.SendEmailRequest) (string, error) {
	m.last = req
	if m.err != nil {
		return "", m.err
	}
	return "email-id-1", nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newService() (*mockSender, *Service) {
	sender := &mockSender{}
	svc := NewService(sender, "Reservations <reservations@example.com>", "info@example.com", noopLogger{})
	return sender, svc
}

func validRequest() *SendEmailRequest {
	return &SendEmailRequest{
		Name:   "Mario Rossi",
		Email:  "mario@example.com",
		Date:   "2026-09-09",
		Time:   "19:00",
		Guests: 2,
	}
}

// ==================== Тесты ====================

func TestSendGuestConfirmation(t *testing.T) {
	sender, svc := newService()

	id, err := svc.SendGuestConfirmation(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "email-id-1", id)

	require.NotNil(t, sender.last)
	assert.Equal(t, []string{"mario@example.com"}, sender.last.To)
	assert.Equal(t, guestSubject, sender.last.Subject)
	assert.Contains(t, sender.last.HTML, "Dear Mario Rossi")
	assert.Contains(t, sender.last.HTML, "2026-09-09")
	assert.Contains(t, sender.last.HTML, "19:00")
}

func TestSendAdminNotification_GoesToAdminInbox(t *testing.T) {
	sender, svc := newService()

	_, err := svc.SendAdminNotification(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"info@example.com"}, sender.last.To)
	assert.Equal(t, adminSubject, sender.last.Subject)
	assert.Contains(t, sender.last.HTML, "mario@example.com")
}

func TestOptionalFieldsRenderedOnlyWhenPresent(t *testing.T) {
	sender, svc := newService()

	_, err := svc.SendGuestConfirmation(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotContains(t, sender.last.HTML, "Occasion")
	assert.NotContains(t, sender.last.HTML, "Special Requests")

	req := validRequest()
	req.Occasion = ptr.Ptr("anniversary")
	req.SpecialRequests = ptr.Ptr("quiet corner")

	_, err = svc.SendGuestConfirmation(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, sender.last.HTML, "anniversary")
	assert.Contains(t, sender.last.HTML, "quiet corner")
}

func TestGuestDataIsEscaped(t *testing.T) {
	sender, svc := newService()
	req := validRequest()
	req.SpecialRequests = ptr.Ptr(`<script>alert("x")</script>`)

	_, err := svc.SendGuestConfirmation(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, strings.Contains(sender.last.HTML, "<script>"))
	assert.Contains(t, sender.last.HTML, "&lt;script&gt;")
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *SendEmailRequest)
	}{
		{name: "missing name", mutate: func(r *SendEmailRequest) { r.Name = "" }},
		{name: "missing email", mutate: func(r *SendEmailRequest) { r.Email = " " }},
		{name: "missing date", mutate: func(r *SendEmailRequest) { r.Date = "" }},
		{name: "missing time", mutate: func(r *SendEmailRequest) { r.Time = "" }},
		{name: "zero guests", mutate: func(r *SendEmailRequest) { r.Guests = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newService()
			req := validRequest()
			tt.mutate(req)

			_, err := svc.SendGuestConfirmation(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestProviderErrorWrapped(t *testing.T) {
	sender, svc := newService()
	sender.err = errors.New("rate limited")

	_, err := svc.SendGuestConfirmation(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSendFailed)
}
