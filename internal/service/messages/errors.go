package messages

import "errors"

var (
	// ErrMessageNotFound возвращается, когда сообщение не найдено
	ErrMessageNotFound = errors.New("contact message not found")

	// ErrInvalidStatus возвращается при неизвестном статусе сообщения
	ErrInvalidStatus = errors.New("invalid message status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
