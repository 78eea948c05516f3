package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных клиента
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrScheduleNotFound возвращается, когда слот не найден
	ErrScheduleNotFound = errors.New("create_booking: schedule not found")

	// ErrSlotNotAvailable возвращается, когда слот занят, заблокирован или корт неактивен
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSlotInPast возвращается, когда дата слота уже прошла
	ErrSlotInPast = errors.New("create_booking: slot date is in the past")

	// ErrInvalidTimeFormat возвращается, когда время слота не разбирается
	ErrInvalidTimeFormat = errors.New("create_booking: invalid slot time format")

	// ErrPriceComputation возвращается, когда не удалось посчитать стоимость
	ErrPriceComputation = errors.New("create_booking: price computation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
