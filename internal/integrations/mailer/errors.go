package mailer

import "errors"

var (
	// ErrSendFailed возвращается, когда mailer-сервис не смог отправить письмо
	ErrSendFailed = errors.New("mailer client: failed to send email")

	// ErrUnauthorized возвращается при неверном shared secret
	ErrUnauthorized = errors.New("mailer client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mailer client: invalid response")
)
