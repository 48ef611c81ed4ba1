package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishRally/Sportitup/internal/domain"
	sessionStore "github.com/KrishRally/Sportitup/internal/infra/session"
	"github.com/KrishRally/Sportitup/pkg/logger"
	"github.com/KrishRally/Sportitup/pkg/sessiontoken"
)

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

func newService(t *testing.T) *Service {
	t.Helper()
	tokens, err := sessiontoken.NewManager("test-secret", "sportitup")
	require.NoError(t, err)
	return NewService(sessionStore.NewMemoryStore(), tokens, logger.NewNop())
}

func TestIssueAuthenticateRevoke(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	issued, err := svc.Issue(ctx, "owner-1", domain.RoleOwner, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)

	sess, err := svc.Authenticate(ctx, issued.Token, domain.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", sess.Subject)

	// токен владельца не подходит для пользовательских маршрутов
	_, err = svc.Authenticate(ctx, issued.Token, domain.RoleUser)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, svc.Revoke(ctx, issued.Token))
	_, err = svc.Authenticate(ctx, issued.Token, domain.RoleOwner)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate_InvalidTokens(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Authenticate(ctx, "", domain.RoleOwner)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "garbage", domain.RoleOwner)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// раньше выданный токен после истечения
	svc.timeProvider = &fixedTime{t: time.Now().Add(-2 * time.Hour)}
	issued, err := svc.Issue(ctx, "owner-1", domain.RoleOwner, time.Hour)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, issued.Token, domain.RoleOwner)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRevoke_IgnoresInvalidToken(t *testing.T) {
	svc := newService(t)
	assert.NoError(t, svc.Revoke(context.Background(), ""))
	assert.NoError(t, svc.Revoke(context.Background(), "garbage"))
}
