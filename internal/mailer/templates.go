package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// Шаблоны писем. html/template экранирует данные гостя,
// так что содержимое special_requests не попадает в разметку как HTML
var (
	guestTemplate = template.Must(template.New("guest").Parse(`<div style="font-family: 'Inter', sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1>Reservation Confirmation</h1>
  <p>Dear {{.Name}},</p>
  <p>Your reservation is confirmed for:</p>
  <ul>
    <li><strong>Date:</strong> {{.Date}}</li>
    <li><strong>Time:</strong> {{.Time}}</li>
    <li><strong>Guests:</strong> {{.Guests}}</li>
    {{if .Occasion}}<li><strong>Occasion:</strong> {{.Occasion}}</li>{{end}}
    {{if .SpecialRequests}}<li><strong>Special Requests:</strong> {{.SpecialRequests}}</li>{{end}}
  </ul>
  <p>We look forward to welcoming you to Al Gobbo di Rialto!</p>
  <p>Best regards,<br>Al Gobbo di Rialto Team</p>
</div>`))

	adminTemplate = template.Must(template.New("admin").Parse(`<div style="font-family: 'Inter', sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1>New Reservation</h1>
  <p>A new reservation has been placed:</p>
  <ul>
    <li><strong>Name:</strong> {{.Name}}</li>
    <li><strong>Email:</strong> {{.Email}}</li>
    <li><strong>Date:</strong> {{.Date}}</li>
    <li><strong>Time:</strong> {{.Time}}</li>
    <li><strong>Guests:</strong> {{.Guests}}</li>
    {{if .Occasion}}<li><strong>Occasion:</strong> {{.Occasion}}</li>{{end}}
    {{if .SpecialRequests}}<li><strong>Special Requests:</strong> {{.SpecialRequests}}</li>{{end}}
  </ul>
</div>`))
)

// templateData данные для рендеринга шаблонов писем
type templateData struct {
	Name            string
	Email           string
	Date            string
	Time            string
	Guests          int
	Occasion        string
	SpecialRequests string
}

func newTemplateData(req *SendEmailRequest) templateData {
	data := templateData{
		Name:   req.Name,
		Email:  req.Email,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
	}
	if req.Occasion != nil {
		data.Occasion = *req.Occasion
	}
	if req.SpecialRequests != nil {
		data.SpecialRequests = *req.SpecialRequests
	}
	return data
}

// renderGuestEmail рендерит письмо-подтверждение для гостя
func renderGuestEmail(req *SendEmailRequest) (string, error) {
	var buf bytes.Buffer
	if err := guestTemplate.Execute(&buf, newTemplateData(req)); err != nil {
		return "", fmt.Errorf("%w: guest template: %v", ErrRenderTemplate, err)
	}
	return buf.String(), nil
}

// renderAdminEmail рендерит уведомление для ресторана
func renderAdminEmail(req *SendEmailRequest) (string, error) {
	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, newTemplateData(req)); err != nil {
		return "", fmt.Errorf("%w: admin template: %v", ErrRenderTemplate, err)
	}
	return buf.String(), nil
}
