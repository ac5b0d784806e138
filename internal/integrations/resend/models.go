package resend

// SendEmailRequest тело запроса к Resend API (POST /emails)
type SendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendEmailResponse тело успешного ответа Resend API
type SendEmailResponse struct {
	ID string `json:"id"`
}

// apiError тело ответа Resend API при ошибке
type apiError struct {
	Name       string `json:"name"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}
