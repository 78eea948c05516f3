package domain

// Business validation constants
const (
	MaxCourtNameLength     = 255
	MaxCustomerNameLength  = 255
	MaxCustomerPhoneLength = 20
	MaxCustomerEmailLength = 255
	MaxNotesLength         = 1000

	// MaxAmount предел денежных колонок NUMERIC(10,2)
	MaxAmount = 99999999.99

	// MaxGenerateDays верхняя граница горизонта генерации слотов
	MaxGenerateDays = 90
)

// DefaultGenerateDays горизонт генерации слотов по умолчанию
const DefaultGenerateDays = 7

// DefaultTimeWindows ежедневные слоты по умолчанию
var DefaultTimeWindows = []TimeWindow{
	{StartTime: "08:00", EndTime: "10:00"},
	{StartTime: "10:00", EndTime: "12:00"},
	{StartTime: "14:00", EndTime: "16:00"},
	{StartTime: "16:00", EndTime: "18:00"},
}
