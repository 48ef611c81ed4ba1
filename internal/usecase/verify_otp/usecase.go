package verify_otp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
	"github.com/KrishRally/Sportitup/internal/service/users/models"
	"github.com/KrishRally/Sportitup/pkg/validation"
)

// UseCase фиксирует подтвержденный телефон пользователя витрины и выдает сессию
type UseCase struct {
	userRepo   UserRepository
	sessions   SessionService
	phones     PhoneNormalizer
	txManager  TransactionManager
	validator  *validation.Validator
	sessionTTL time.Duration
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	sessions SessionService,
	phones PhoneNormalizer,
	txManager TransactionManager,
	validator *validation.Validator,
	sessionTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:   userRepo,
		sessions:   sessions,
		phones:     phones,
		txManager:  txManager,
		validator:  validator,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Execute находит пользователя по uid, затем по телефону, иначе создает.
// Найденному пользователю проставляется uid и флаг верификации, имя обновляется, если передано.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	req.UID = strings.TrimSpace(req.UID)
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := uc.validator.Struct(req); err != nil {
		uc.logger.Warn("VerifyOTP: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Нормализация телефона
	phone, err := uc.phones.Normalize(req.Phone)
	if err != nil {
		uc.logger.Warn("VerifyOTP: invalid phone: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}

	uc.logger.Info("VerifyOTP: uid=%s phone=%s", req.UID, phone)

	var (
		result  *domain.User
		created bool
	)

	// 3. Поиск или создание пользователя
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		user, err := uc.find(txCtx, req.UID, phone)
		if err != nil {
			return err
		}

		if user == nil {
			name := req.Name
			if name == "" {
				name = DefaultUserName
			}
			user, err = uc.userRepo.Create(txCtx, &domain.User{
				ID:          uuid.NewString(),
				ExternalUID: req.UID,
				Phone:       phone,
				Name:        name,
				IsVerified:  true,
			})
			if err != nil {
				return fmt.Errorf("%w: create user: %v", ErrInternal, err)
			}
			result, created = user, true
			return nil
		}

		user.ExternalUID = req.UID
		user.IsVerified = true
		if req.Name != "" {
			user.Name = req.Name
		}
		user, err = uc.userRepo.Update(txCtx, user)
		if err != nil {
			return fmt.Errorf("%w: update user: %v", ErrInternal, err)
		}
		result = user
		return nil
	})
	if err != nil {
		uc.logger.Error("VerifyOTP: failed to upsert user uid=%s: %v", req.UID, err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	// 4. Сессия пользователя
	issued, err := uc.sessions.Issue(ctx, result.ID, domain.RoleUser, uc.sessionTTL)
	if err != nil {
		uc.logger.Error("VerifyOTP: failed to issue session for user id=%s: %v", result.ID, err)
		return nil, fmt.Errorf("%w: issue session: %v", ErrInternal, err)
	}

	uc.logger.Info("VerifyOTP: user id=%s verified (created=%t)", result.ID, created)
	return &Response{
		User:      models.FromDomainUser(result),
		Token:     issued.Token,
		ExpiresAt: issued.Session.ExpiresAt,
		Created:   created,
	}, nil
}

// find сначала по uid, затем по телефону; nil без ошибки - пользователя нет
func (uc *UseCase) find(ctx context.Context, uid, phone string) (*domain.User, error) {
	user, err := uc.userRepo.GetByExternalUID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: get user by uid: %v", ErrInternal, err)
	}

	user, err = uc.userRepo.GetByPhone(ctx, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: get user by phone: %v", ErrInternal, err)
	}
	return nil, nil
}
