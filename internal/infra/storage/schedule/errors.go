package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда слот не найден
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrScheduleExists возвращается, когда у корта уже есть слот с той же датой и временем начала
	ErrScheduleExists = errors.New("schedule.repository: schedule already exists")

	// ErrCourtNotFound возвращается, когда слот ссылается на несуществующий корт
	ErrCourtNotFound = errors.New("schedule.repository: court not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("schedule.repository: slot not available")

	// ErrScheduleBooked возвращается при изменении или удалении слота, на который есть бронирование
	ErrScheduleBooked = errors.New("schedule.repository: schedule has booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
