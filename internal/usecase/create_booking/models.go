package create_booking

import (
	"strings"
)

// Request модель запроса на создание бронирования
type Request struct {
	ScheduleID    int64   `json:"schedule_id" validate:"required,gt=0"`
	CustomerName  string  `json:"customer_name" validate:"required,max=255"`
	CustomerPhone string  `json:"customer_phone" validate:"required,max=20"`
	CustomerEmail *string `json:"customer_email,omitempty" validate:"omitempty,email,max=255"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// normalize убирает пробелы по краям и превращает пустые необязательные поля в nil
func (r *Request) normalize() {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.CustomerPhone = strings.TrimSpace(r.CustomerPhone)
	r.CustomerEmail = trimOptional(r.CustomerEmail)
	r.Notes = trimOptional(r.Notes)
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
