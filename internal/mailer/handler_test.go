package mailer

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(sender *mockSender) *mux.Router {
	svc := NewService(sender, "Reservations <reservations@example.com>", "info@example.com", noopLogger{})
	handler := NewHandler(svc, noopLogger{})

	r := mux.NewRouter()
	r.Use(InternalAuth("secret-token", noopLogger{}))
	r.HandleFunc("/send-email", handler.HandleSendEmail).Methods(http.MethodPost)
	r.HandleFunc("/send-admin-confirmation", handler.HandleSendAdminConfirmation).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/send-email", bytes.NewReader(payload))
	if token != "" {
		req.Header.Set(InternalTokenHeader, token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleSendEmail_Success(t *testing.T) {
	sender := &mockSender{}
	router := newTestServer(sender)

	rec := doRequest(t, router, "secret-token", validRequest())

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SendEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "email-id-1", resp.ID)
}

func TestHandleSendEmail_MissingToken(t *testing.T) {
	sender := &mockSender{}
	router := newTestServer(sender)

	rec := doRequest(t, router, "", validRequest())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// До сервиса запрос не дошёл
	assert.Nil(t, sender.last)
}

func TestHandleSendEmail_WrongToken(t *testing.T) {
	router := newTestServer(&mockSender{})

	rec := doRequest(t, router, "wrong", validRequest())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleSendEmail_InvalidInput(t *testing.T) {
	router := newTestServer(&mockSender{})

	req := validRequest()
	req.Email = ""
	rec := doRequest(t, router, "secret-token", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp SendEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestHandleSendEmail_ProviderFailure(t *testing.T) {
	sender := &mockSender{err: assert.AnError}
	router := newTestServer(sender)

	rec := doRequest(t, router, "secret-token", validRequest())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp SendEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
