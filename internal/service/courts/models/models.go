package models

import (
	"time"

	"github.com/m04kA/court-booking/internal/domain"
)

// Request модели

// CreateCourtRequest запрос на создание корта
type CreateCourtRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Description  *string  `json:"description,omitempty"`
	PricePerHour *float64 `json:"price_per_hour" validate:"required,gte=0,lte=99999999.99"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// UpdateCourtRequest частичное обновление корта, nil - поле не меняется
type UpdateCourtRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description  *string  `json:"description,omitempty"`
	PricePerHour *float64 `json:"price_per_hour,omitempty" validate:"omitempty,gte=0,lte=99999999.99"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// IsEmpty ни одно поле не передано
func (r *UpdateCourtRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.PricePerHour == nil && r.Status == nil
}

// ListCourtsRequest фильтр списка кортов
type ListCourtsRequest struct {
	// IncludeInactive включить неактивные корты (по умолчанию только активные)
	IncludeInactive bool
}

// Response модели

// CourtResponse корт
type CourtResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	PricePerHour float64   `json:"price_per_hour"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CourtListResponse список кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
	Total  int             `json:"total"`
}

// FromDomainCourt конвертирует domain модель в response
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}
	return &CourtResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		PricePerHour: c.PricePerHour,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromDomainCourtList конвертирует список кортов
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	result := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
		Total:  len(courts),
	}
	for _, c := range courts {
		result.Courts = append(result.Courts, *FromDomainCourt(c))
	}
	return result
}
