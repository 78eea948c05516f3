package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда слот не найден
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrCourtNotFound возвращается, когда корт слота не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrScheduleExists возвращается, когда у корта уже есть слот с той же датой и временем начала
	ErrScheduleExists = errors.New("schedule already exists")

	// ErrScheduleBooked возвращается при изменении или удалении слота с бронированием
	ErrScheduleBooked = errors.New("schedule has a booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
