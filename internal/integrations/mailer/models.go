package mailer

// EmailRequest тело запроса к mailer-сервису
// Формат совпадает с POST /send-email и /send-admin-confirmation
type EmailRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Date            string  `json:"date"`  // YYYY-MM-DD
	Time            string  `json:"time"`  // HH:MM
	Guests          int     `json:"guests"`
	Occasion        *string `json:"occasion,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

// EmailResponse тело ответа mailer-сервиса
type EmailResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}
