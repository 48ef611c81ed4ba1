package availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/service/availability/models"
	"github.com/KrishRally/Sportitup/pkg/validation"
)

// Service ручное управление доступностью слотов
type Service struct {
	blockRepo    BlockRepository
	validator    *validation.Validator
	timeProvider TimeProvider
	logger       Logger
}

func NewService(blockRepo BlockRepository, validator *validation.Validator, logger Logger) *Service {
	return &Service{
		blockRepo:    blockRepo,
		validator:    validator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Toggle block добавляет блокировку (повторный block ничего не меняет),
// unblock снимает её (отсутствующая блокировка не ошибка).
// Снятие блокировки не освобождает слот, занятый активным бронированием.
func (s *Service) Toggle(ctx context.Context, ownerID string, req *models.ToggleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("ToggleAvailability: validation failed for owner=%s: %v", ownerID, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	slot := strings.TrimSpace(req.Slot)

	switch domain.BlockAction(req.Action) {
	case domain.ActionBlock:
		block := &domain.AvailabilityBlock{
			OwnerID:   ownerID,
			Date:      date,
			Slot:      slot,
			CreatedAt: s.timeProvider.Now(),
		}
		if err := s.blockRepo.Add(ctx, block); err != nil {
			s.logger.Error("ToggleAvailability: failed to block %s %s for owner=%s: %v", req.Date, slot, ownerID, err)
			return fmt.Errorf("%w: add block: %v", ErrInternal, err)
		}
	case domain.ActionUnblock:
		if err := s.blockRepo.Remove(ctx, ownerID, date, slot); err != nil {
			s.logger.Error("ToggleAvailability: failed to unblock %s %s for owner=%s: %v", req.Date, slot, ownerID, err)
			return fmt.Errorf("%w: remove block: %v", ErrInternal, err)
		}
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	s.logger.Info("ToggleAvailability: owner=%s %s %s %s", ownerID, req.Action, req.Date, slot)
	return nil
}
