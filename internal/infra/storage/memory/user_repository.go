package memory

import (
	"context"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
)

// UserRepository пользователи витрины в памяти
type UserRepository struct {
	store *Store
	now   func() time.Time
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store, now: time.Now}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.ID == id })
}

func (r *UserRepository) GetByExternalUID(ctx context.Context, uid string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return uid != "" && u.ExternalUID == uid })
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return phone != "" && u.Phone == phone })
}

// Create сохраняет пользователя, телефон уникален
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.ID == user.ID || u.Phone == user.Phone {
			return nil, storage.ErrDuplicate
		}
	}

	now := r.now()
	c := *user
	c.CreatedAt = now
	c.UpdatedAt = now
	r.store.users = append(r.store.users, &c)

	out := c
	return &out, nil
}

// Update обновляет uid, телефон, имя и флаг верификации
func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var stored *domain.User
	for _, u := range r.store.users {
		if u.ID == user.ID {
			stored = u
			continue
		}
		if u.Phone == user.Phone {
			return nil, storage.ErrDuplicate
		}
	}
	if stored == nil {
		return nil, storage.ErrUserNotFound
	}

	stored.ExternalUID = user.ExternalUID
	stored.Phone = user.Phone
	stored.Name = user.Name
	stored.IsVerified = user.IsVerified
	stored.UpdatedAt = r.now()

	out := *stored
	return &out, nil
}

func (r *UserRepository) find(match func(u *domain.User) bool) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if match(u) {
			out := *u
			return &out, nil
		}
	}
	return nil, storage.ErrUserNotFound
}
