package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
	"github.com/KrishRally/Sportitup/internal/service/users/models"
)

// Service чтение пользователей витрины
type Service struct {
	userRepo UserRepository
	logger   Logger
}

func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{userRepo: userRepo, logger: logger}
}

// Get пользователь по ID в доменном виде (нужен телефон для поиска бронирований)
func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.Warn("GetUser: user id=%s not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetUser: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: get user: %v", ErrInternal, err)
	}
	return user, nil
}

// GetByID пользователь по ID для ответа API
func (s *Service) GetByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainUser(user), nil
}
