package memory

import (
	"context"
	"sync"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// Store хранилище в памяти процесса. Данные теряются при перезапуске.
//
// mu защищает данные, txMu сериализует транзакции (DoSerializable),
// чтобы проверка слота и вставка выполнялись атомарно в пределах процесса.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	bookings    []*domain.Booking
	bookingByID map[string]*domain.Booking
	blocks      []*domain.AvailabilityBlock
	users       []*domain.User
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		bookingByID: make(map[string]*domain.Booking),
	}
}

// Reset очищает бронирования, блокировки и пользователей.
// Владельцы и площадки приходят из конфигурации и не затрагиваются.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = nil
	s.bookingByID = make(map[string]*domain.Booking)
	s.blocks = nil
	s.users = nil
}

type txKey struct{}

// DoSerializable выполняет fn эксклюзивно относительно других транзакций хранилища.
// Вложенные вызовы выполняются в уже открытой транзакции.
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}
