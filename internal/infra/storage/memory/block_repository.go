package memory

import (
	"context"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// BlockRepository ручные блокировки слотов в памяти
type BlockRepository struct {
	store *Store
	now   func() time.Time
}

func NewBlockRepository(store *Store) *BlockRepository {
	return &BlockRepository{store: store, now: time.Now}
}

// List блокировки владельца на дату в порядке добавления
func (r *BlockRepository) List(ctx context.Context, ownerID string, date time.Time) ([]*domain.AvailabilityBlock, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.AvailabilityBlock, 0)
	for _, b := range r.store.blocks {
		if b.OwnerID == ownerID && domain.SameDay(b.Date, date) {
			c := *b
			result = append(result, &c)
		}
	}
	return result, nil
}

// Add идемпотентно: повторная блокировка того же слота ничего не добавляет
func (r *BlockRepository) Add(ctx context.Context, block *domain.AvailabilityBlock) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, b := range r.store.blocks {
		if b.OwnerID == block.OwnerID && domain.SameDay(b.Date, block.Date) && b.Slot == block.Slot {
			return nil
		}
	}

	c := *block
	c.CreatedAt = r.now()
	r.store.blocks = append(r.store.blocks, &c)
	return nil
}

// Remove снимает блокировку, отсутствие блокировки не ошибка
func (r *BlockRepository) Remove(ctx context.Context, ownerID string, date time.Time, slot string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, b := range r.store.blocks {
		if b.OwnerID == ownerID && domain.SameDay(b.Date, date) && b.Slot == slot {
			r.store.blocks = append(r.store.blocks[:i], r.store.blocks[i+1:]...)
			return nil
		}
	}
	return nil
}
