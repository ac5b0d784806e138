package mailer

// SendEmailRequest тело запроса на отправку письма
// Формат общий для POST /send-email и /send-admin-confirmation
type SendEmailRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Date            string  `json:"date"` // YYYY-MM-DD
	Time            string  `json:"time"` // HH:MM
	Guests          int     `json:"guests"`
	Occasion        *string `json:"occasion,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

// SendEmailResponse тело ответа mailer-сервиса
type SendEmailResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}
