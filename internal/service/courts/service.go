package courts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/court-booking/internal/domain"
	courtRepo "github.com/m04kA/court-booking/internal/infra/storage/court"
	"github.com/m04kA/court-booking/internal/service/courts/models"
	"github.com/m04kA/court-booking/pkg/ptr"
)

// Service сервис для управления кортами
type Service struct {
	courtRepo CourtRepository
	validator Validator
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, validator Validator, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		validator: validator,
		logger:    logger,
	}
}

// List список кортов по имени; по умолчанию только активные
func (s *Service) List(ctx context.Context, req *models.ListCourtsRequest) (*models.CourtListResponse, error) {
	filter := domain.CourtFilter{}
	if !req.IncludeInactive {
		filter.Status = ptr.Of(domain.CourtStatusActive)
	}

	courts, err := s.courtRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourtList(courts), nil
}

// GetByID получает корт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	court, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCourt(court), nil
}

// Create создает корт; статус по умолчанию active
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	court := &domain.Court{
		Name:         req.Name,
		Description:  req.Description,
		PricePerHour: *req.PricePerHour,
		Status:       domain.CourtStatusActive,
	}
	if req.Status != nil {
		court.Status = domain.CourtStatus(*req.Status)
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: court id=%d %q created", created.ID, created.Name)
	return models.FromDomainCourt(created), nil
}

// Update частично обновляет корт
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	if req.Name != nil {
		*req.Name = strings.TrimSpace(*req.Name)
	}

	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	court, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return models.FromDomainCourt(court), nil
	}

	if req.Name != nil {
		court.Name = *req.Name
	}
	if req.Description != nil {
		court.Description = req.Description
		if *req.Description == "" {
			court.Description = nil
		}
	}
	if req.PricePerHour != nil {
		court.PricePerHour = *req.PricePerHour
	}
	if req.Status != nil {
		court.Status = domain.CourtStatus(*req.Status)
	}

	if err := s.courtRepo.Update(ctx, court); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: court id=%d updated", id)
	return models.FromDomainCourt(court), nil
}

// Delete удаляет корт без слотов
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.courtRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, courtRepo.ErrCourtNotFound):
			s.logger.Warn("Delete: court id=%d not found", id)
			return ErrCourtNotFound
		case errors.Is(err, courtRepo.ErrCourtInUse):
			s.logger.Warn("Delete: court id=%d has schedules", id)
			return ErrCourtInUse
		}
		s.logger.Error("Delete: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: court id=%d deleted", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("%s: court id=%d not found", op, id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("%s: repository error for court id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return court, nil
}
