package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrDateTooFarInFuture возвращается, когда дата дальше 3 месяцев вперед
	ErrDateTooFarInFuture = errors.New("create_reservation: date is too far in the future")

	// ErrSlotNotFound возвращается, когда слот отсутствует в активном каталоге
	ErrSlotNotFound = errors.New("create_reservation: time slot not found")

	// ErrSlotUnavailable возвращается, когда слот закрыт (закрытая дата,
	// еженедельное закрытие) или полностью занят
	ErrSlotUnavailable = errors.New("create_reservation: time slot is not available")

	// ErrNotEnoughCapacity возвращается, когда оставшихся мест меньше,
	// чем запрошено гостей
	ErrNotEnoughCapacity = errors.New("create_reservation: not enough remaining capacity")

	// ErrDuplicateReservation возвращается при существующем бронировании
	// с тем же (date, time, email) - независимо от его статуса
	ErrDuplicateReservation = errors.New("create_reservation: reservation already exists for this date and time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
