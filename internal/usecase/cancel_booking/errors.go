package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrInternal возвращается при внутренних ошибках, в том числе если слот не удалось освободить
	ErrInternal = errors.New("cancel_booking: internal error")
)
