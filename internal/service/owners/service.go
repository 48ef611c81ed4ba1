package owners

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
	"github.com/KrishRally/Sportitup/internal/service/owners/models"
	"github.com/KrishRally/Sportitup/pkg/validation"
)

// Service вход и выход владельцев
type Service struct {
	ownerRepo  OwnerRepository
	sessions   SessionService
	validator  *validation.Validator
	sessionTTL time.Duration
	logger     Logger
}

func NewService(
	ownerRepo OwnerRepository,
	sessions SessionService,
	validator *validation.Validator,
	sessionTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		ownerRepo:  ownerRepo,
		sessions:   sessions,
		validator:  validator,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// LoginResult владелец и выданная сессия
type LoginResult struct {
	Owner     *models.OwnerResponse
	Token     string
	ExpiresAt time.Time
}

// Login email обрезается и приводится к нижнему регистру, пароль сравнивается с bcrypt хешем
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error) {
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("OwnerLogin: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("OwnerLogin: attempt for email=%s", email)

	owner, err := s.ownerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrOwnerNotFound) {
			checkPassword(dummyHash, req.Password)
			s.logger.Warn("OwnerLogin: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("OwnerLogin: repository error: %v", err)
		return nil, fmt.Errorf("%w: get owner: %v", ErrInternal, err)
	}

	if !checkPassword(owner.PasswordHash, req.Password) {
		s.logger.Warn("OwnerLogin: wrong password for owner id=%s", owner.ID)
		return nil, ErrInvalidCredentials
	}

	issued, err := s.sessions.Issue(ctx, owner.ID, domain.RoleOwner, s.sessionTTL)
	if err != nil {
		s.logger.Error("OwnerLogin: failed to issue session for owner id=%s: %v", owner.ID, err)
		return nil, fmt.Errorf("%w: issue session: %v", ErrInternal, err)
	}

	s.logger.Info("OwnerLogin: owner id=%s signed in", owner.ID)
	return &LoginResult{
		Owner:     models.FromDomainOwner(owner),
		Token:     issued.Token,
		ExpiresAt: issued.Session.ExpiresAt,
	}, nil
}

// Logout отзывает сессию, если она есть
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		s.logger.Error("OwnerLogout: failed to revoke session: %v", err)
		return fmt.Errorf("%w: revoke session: %v", ErrInternal, err)
	}
	return nil
}
