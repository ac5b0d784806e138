package messages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	messageRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/message"
	"github.com/m04kA/RST-ReservationService/internal/service/messages/models"
)

// ==================== Моки ====================

type mockRepo struct {
	created       *domain.ContactMessage
	listFilter    *domain.MessageStatus
	updatedID     int64
	updatedStatus domain.MessageStatus
	updateErr     error
}

func (m *mockRepo) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	created := *msg
	created.ID = 31
	m.created = &created
	return &created, nil
}

func (m *mockRepo) List(ctx context.Context, status *domain.MessageStatus) ([]*domain.ContactMessage, error) {
	m.listFilter = status
	return []*domain.ContactMessage{{ID: 31, Status: domain.MessageUnread}}, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status domain.MessageStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedID = id
	m.updatedStatus = status
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newService() (*mockRepo, *Service) {
	repo := &mockRepo{}
	return repo, NewService(repo, noopLogger{})
}

func validRequest() *models.CreateMessageRequest {
	return &models.CreateMessageRequest{
		FirstName: "Mario",
		LastName:  "Rossi",
		Email:     "mario@example.com",
		Subject:   "Private dining",
		Message:   "Do you host private events?",
	}
}

// ==================== Тесты ====================

func TestCreate_Success(t *testing.T) {
	repo, svc := newService()

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(31), resp.ID)
	// Новое сообщение всегда unread
	assert.Equal(t, string(domain.MessageUnread), resp.Status)
	assert.Equal(t, domain.MessageUnread, repo.created.Status)
}

func TestCreate_TrimsWhitespace(t *testing.T) {
	repo, svc := newService()
	req := validRequest()
	req.FirstName = "  Mario  "
	req.Email = " mario@example.com "

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Mario", repo.created.FirstName)
	assert.Equal(t, "mario@example.com", repo.created.Email)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.CreateMessageRequest)
	}{
		{name: "missing first name", mutate: func(r *models.CreateMessageRequest) { r.FirstName = " " }},
		{name: "missing last name", mutate: func(r *models.CreateMessageRequest) { r.LastName = "" }},
		{name: "missing email", mutate: func(r *models.CreateMessageRequest) { r.Email = "" }},
		{name: "bad email", mutate: func(r *models.CreateMessageRequest) { r.Email = "mario at example" }},
		{name: "missing message", mutate: func(r *models.CreateMessageRequest) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newService()
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestList_NoFilter(t *testing.T) {
	repo, svc := newService()

	resp, err := svc.List(context.Background(), "")
	require.NoError(t, err)

	assert.Nil(t, repo.listFilter)
	assert.Equal(t, 1, resp.Total)
}

func TestList_StatusFilter(t *testing.T) {
	repo, svc := newService()

	_, err := svc.List(context.Background(), "unread")
	require.NoError(t, err)

	require.NotNil(t, repo.listFilter)
	assert.Equal(t, domain.MessageUnread, *repo.listFilter)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	_, svc := newService()

	_, err := svc.List(context.Background(), "starred")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_Success(t *testing.T) {
	repo, svc := newService()

	err := svc.UpdateStatus(context.Background(), 31, &models.UpdateMessageStatusRequest{Status: "archived"})
	require.NoError(t, err)

	assert.Equal(t, int64(31), repo.updatedID)
	assert.Equal(t, domain.MessageArchived, repo.updatedStatus)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	_, svc := newService()

	err := svc.UpdateStatus(context.Background(), 31, &models.UpdateMessageStatusRequest{Status: "deleted"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, svc := newService()
	repo.updateErr = messageRepo.ErrMessageNotFound

	err := svc.UpdateStatus(context.Background(), 404, &models.UpdateMessageStatusRequest{Status: "read"})
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
