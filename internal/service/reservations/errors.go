package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	// или email не совпадает с email владельца
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidTransition возвращается при недопустимом переходе статусов
	// (например, completed -> pending)
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyCancelled возвращается при повторной отмене бронирования
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")

	// ErrCannotCancel возвращается, когда бронирование нельзя отменить
	// (завершённое бронирование)
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
