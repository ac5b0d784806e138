package schedule

import "errors"

var (
	// ErrTimeSlotNotFound возвращается, когда слот не найден
	ErrTimeSlotNotFound = errors.New("time slot not found")

	// ErrClosedDateNotFound возвращается, когда разовое закрытие не найдено
	ErrClosedDateNotFound = errors.New("closed date not found")

	// ErrClosureNotFound возвращается, когда еженедельное закрытие не найдено
	ErrClosureNotFound = errors.New("recurring closure not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
