package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KrishRally/Sportitup/internal/domain"
	sessionStore "github.com/KrishRally/Sportitup/internal/infra/session"
)

// Service выдача, проверка и отзыв сессий.
// Сессия = подписанный токен (в cookie) + запись в хранилище; отзыв удаляет запись.
type Service struct {
	store        Store
	tokens       TokenManager
	timeProvider TimeProvider
	logger       Logger
}

func NewService(store Store, tokens TokenManager, logger Logger) *Service {
	return &Service{
		store:        store,
		tokens:       tokens,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Issued выданная сессия и её токен
type Issued struct {
	Token   string
	Session *domain.Session
}

// Issue создает сессию для subject с ролью role
func (s *Service) Issue(ctx context.Context, subject string, role domain.Role, ttl time.Duration) (*Issued, error) {
	now := s.timeProvider.Now()
	sess := &domain.Session{
		ID:        uuid.NewString(),
		Subject:   subject,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	token, err := s.tokens.Issue(sess.Subject, string(sess.Role), sess.ID, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		s.logger.Error("IssueSession: failed to sign token for %s=%s: %v", role, subject, err)
		return nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	if err := s.store.Save(ctx, sess); err != nil {
		s.logger.Error("IssueSession: failed to save session for %s=%s: %v", role, subject, err)
		return nil, fmt.Errorf("%w: save session: %v", ErrInternal, err)
	}

	s.logger.Info("IssueSession: issued %s session id=%s for subject=%s", role, sess.ID, subject)
	return &Issued{Token: token, Session: sess}, nil
}

// Authenticate проверяет подпись, срок, роль и наличие сессии в хранилище
func (s *Service) Authenticate(ctx context.Context, token string, role domain.Role) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if domain.Role(claims.Role) != role {
		return nil, fmt.Errorf("%w: role %s required", ErrUnauthorized, role)
	}

	sess, err := s.store.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: session revoked or expired", ErrUnauthorized)
		}
		s.logger.Error("Authenticate: session store error: %v", err)
		return nil, fmt.Errorf("%w: load session: %v", ErrInternal, err)
	}

	if sess.Subject != claims.Subject || sess.Role != role {
		return nil, fmt.Errorf("%w: session does not match token", ErrUnauthorized)
	}

	return sess, nil
}

// Revoke удаляет сессию токена. Невалидный или пустой токен игнорируется.
func (s *Service) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}

	if err := s.store.Delete(ctx, claims.ID); err != nil {
		s.logger.Error("RevokeSession: failed to delete session id=%s: %v", claims.ID, err)
		return fmt.Errorf("%w: delete session: %v", ErrInternal, err)
	}

	s.logger.Info("RevokeSession: revoked session id=%s", claims.ID)
	return nil
}
