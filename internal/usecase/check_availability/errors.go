package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных клиента
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrScheduleNotFound возвращается, когда слот не найден
	ErrScheduleNotFound = errors.New("check_availability: schedule not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("check_availability: court not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
