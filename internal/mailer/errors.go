package mailer

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных письма
	ErrInvalidInput = errors.New("mailer: invalid input data")

	// ErrRenderTemplate возвращается при ошибке рендеринга шаблона письма
	ErrRenderTemplate = errors.New("mailer: failed to render email template")

	// ErrSendFailed возвращается, когда провайдер не принял письмо
	ErrSendFailed = errors.New("mailer: failed to send email")
)
