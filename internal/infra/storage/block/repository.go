package block

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
	"github.com/KrishRally/Sportitup/pkg/dbmetrics"
	"github.com/KrishRally/Sportitup/pkg/psqlbuilder"
)

const table = "availability_blocks"

// Repository ручные блокировки слотов в postgres
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List блокировки владельца на дату в порядке добавления
func (r *Repository) List(ctx context.Context, ownerID string, date time.Time) ([]*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("owner_id", "block_date", "slot", "created_at").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID, "block_date": date.Format(domain.DateFormat)}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if storage.IsSerializationFailure(err) {
			return nil, storage.ErrSerialization
		}
		return nil, fmt.Errorf("%w: List - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.AvailabilityBlock, 0)
	for rows.Next() {
		var b domain.AvailabilityBlock
		if err := rows.Scan(&b.OwnerID, &b.Date, &b.Slot, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", storage.ErrScanRow, err)
		}
		b.Date = domain.DateOnly(b.Date)
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", storage.ErrScanRow, err)
	}

	return blocks, nil
}

// Add идемпотентно, уникальный индекс (owner_id, block_date, slot)
func (r *Repository) Add(ctx context.Context, block *domain.AvailabilityBlock) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("owner_id", "block_date", "slot").
		Values(block.OwnerID, block.Date.Format(domain.DateFormat), block.Slot).
		Suffix("ON CONFLICT (owner_id, block_date, slot) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Add - build insert query: %v", storage.ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Add - execute insert: %v", storage.ErrExecQuery, err)
	}

	return nil
}

// Remove снимает блокировку, отсутствие блокировки не ошибка
func (r *Repository) Remove(ctx context.Context, ownerID string, date time.Time, slot string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"owner_id": ownerID, "block_date": date.Format(domain.DateFormat), "slot": slot}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", storage.ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", storage.ErrExecQuery, err)
	}

	return nil
}
