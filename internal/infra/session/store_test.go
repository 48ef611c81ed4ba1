package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishRally/Sportitup/internal/domain"
)

type store interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestStores_SaveGetDelete(t *testing.T) {
	redisStore, _ := newRedisStore(t)

	stores := map[string]store{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			now := time.Now().UTC().Truncate(time.Second)
			sess := &domain.Session{
				ID:        "sess-1",
				Subject:   "owner-1",
				Role:      domain.RoleOwner,
				CreatedAt: now,
				ExpiresAt: now.Add(time.Hour),
			}

			require.NoError(t, s.Save(ctx, sess))

			got, err := s.Get(ctx, "sess-1")
			require.NoError(t, err)
			assert.Equal(t, "owner-1", got.Subject)
			assert.Equal(t, domain.RoleOwner, got.Role)
			assert.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))

			require.NoError(t, s.Delete(ctx, "sess-1"))
			require.NoError(t, s.Delete(ctx, "sess-1"))

			_, err = s.Get(ctx, "sess-1")
			assert.ErrorIs(t, err, ErrSessionNotFound)
		})
	}
}

func TestMemoryStore_Expired(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(context.Background(), &domain.Session{ID: "s", ExpiresAt: now.Add(time.Minute)}))

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err := s.Get(context.Background(), "s")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_TTL(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &domain.Session{
		ID:        "s",
		Subject:   "user-1",
		Role:      domain.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	assert.True(t, mr.Exists("session:s"))
	ttl := mr.TTL("session:s")
	assert.Greater(t, ttl, 59*time.Minute)

	mr.FastForward(2 * time.Hour)
	_, err := s.Get(ctx, "s")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = s.Save(ctx, &domain.Session{ID: "old", ExpiresAt: time.Now().Add(-time.Second)})
	assert.ErrorIs(t, err, ErrStore)
}
