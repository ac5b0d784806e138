package resend

import "errors"

var (
	// ErrSendFailed возвращается, когда Resend отклонил отправку письма
	ErrSendFailed = errors.New("resend client: failed to send email")

	// ErrUnauthorized возвращается при неверном API ключе
	ErrUnauthorized = errors.New("resend client: invalid api key")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("resend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("resend client: invalid response")
)
