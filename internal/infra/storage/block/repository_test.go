package block

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishRally/Sportitup/internal/domain"
)

var day = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO availability_blocks (owner_id,block_date,slot) VALUES ($1,$2,$3) ON CONFLICT (owner_id, block_date, slot) DO NOTHING")).
		WithArgs("owner-1", "2024-06-01", "08:00-09:00").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT owner_id, block_date, slot, created_at FROM availability_blocks WHERE block_date = $1 AND owner_id = $2 ORDER BY id ASC")).
		WithArgs("2024-06-01", "owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id", "block_date", "slot", "created_at"}).
			AddRow("owner-1", day, "08:00-09:00", time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM availability_blocks WHERE block_date = $1 AND owner_id = $2 AND slot = $3")).
		WithArgs("2024-06-01", "owner-1", "08:00-09:00").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Add(ctx, &domain.AvailabilityBlock{OwnerID: "owner-1", Date: day, Slot: "08:00-09:00"}))

	blocks, err := repo.List(ctx, "owner-1", day)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "08:00-09:00", blocks[0].Slot)

	require.NoError(t, repo.Remove(ctx, "owner-1", day, "08:00-09:00"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
