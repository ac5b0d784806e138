package closure

import "errors"

var (
	// ErrClosedDateNotFound возвращается, когда закрытая дата не найдена
	ErrClosedDateNotFound = errors.New("closure.repository: closed date not found")

	// ErrClosureNotFound возвращается, когда еженедельное закрытие не найдено
	ErrClosureNotFound = errors.New("closure.repository: recurring closure not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("closure.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("closure.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("closure.repository: failed to scan row")
)
