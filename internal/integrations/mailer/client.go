package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с mailer-сервисом (email relay)
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента mailer-сервиса
func NewClient(baseURL string, timeout time.Duration, token string, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendReservationConfirmation отправляет гостю письмо-подтверждение бронирования
func (c *Client) SendReservationConfirmation(ctx context.Context, req *EmailRequest) error {
	return c.send(ctx, "/send-email", req)
}

// SendAdminCopy отправляет копию подтверждения на почту ресторана
func (c *Client) SendAdminCopy(ctx context.Context, req *EmailRequest) error {
	return c.send(ctx, "/send-admin-confirmation", req)
}

func (c *Client) send(ctx context.Context, path string, emailReq *EmailRequest) error {
	body, err := json.Marshal(emailReq)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusInternalServerError:
		var emailResp EmailResponse
		if err := json.NewDecoder(resp.Body).Decode(&emailResp); err == nil && emailResp.Error != "" {
			return fmt.Errorf("%w: %s", ErrSendFailed, emailResp.Error)
		}
		return ErrSendFailed
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var emailResp EmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&emailResp); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !emailResp.Success {
		return fmt.Errorf("%w: %s", ErrSendFailed, emailResp.Error)
	}

	return nil
}
