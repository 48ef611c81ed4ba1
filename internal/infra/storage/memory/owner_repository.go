package memory

import (
	"context"
	"strings"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
)

// OwnerRepository реестр владельцев из конфигурации (только чтение)
type OwnerRepository struct {
	byID    map[string]*domain.Owner
	byEmail map[string]*domain.Owner
}

// NewOwnerRepository email сравнивается без учета регистра
func NewOwnerRepository(owners []*domain.Owner) *OwnerRepository {
	r := &OwnerRepository{
		byID:    make(map[string]*domain.Owner, len(owners)),
		byEmail: make(map[string]*domain.Owner, len(owners)),
	}
	for _, o := range owners {
		r.byID[o.ID] = o
		r.byEmail[normalizeEmail(o.Email)] = o
	}
	return r
}

func (r *OwnerRepository) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, storage.ErrOwnerNotFound
	}
	out := *o
	return &out, nil
}

func (r *OwnerRepository) GetByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	o, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, storage.ErrOwnerNotFound
	}
	out := *o
	return &out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
