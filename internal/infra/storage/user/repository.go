package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
	"github.com/KrishRally/Sportitup/pkg/dbmetrics"
	"github.com/KrishRally/Sportitup/pkg/psqlbuilder"
)

const table = "users"

var columns = []string{"id", "external_uid", "phone", "name", "is_verified", "created_at", "updated_at"}

// Repository пользователи витрины в postgres
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) GetByExternalUID(ctx context.Context, uid string) (*domain.User, error) {
	if uid == "" {
		return nil, storage.ErrUserNotFound
	}
	return r.getBy(ctx, "GetByExternalUID", squirrel.Eq{"external_uid": uid})
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if phone == "" {
		return nil, storage.ErrUserNotFound
	}
	return r.getBy(ctx, "GetByPhone", squirrel.Eq{"phone": phone})
}

// Create сохраняет пользователя, телефон уникален
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "external_uid", "phone", "name", "is_verified").
		Values(user.ID, nullable(user.ExternalUID), user.Phone, user.Name, user.IsVerified).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	created := *user
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	return &created, nil
}

// Update обновляет uid, телефон, имя и флаг верификации
func (r *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("external_uid", nullable(user.ExternalUID)).
		Set("phone", user.Phone).
		Set("name", user.Name).
		Set("is_verified", user.IsVerified).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", storage.ErrBuildQuery, err)
	}

	updated := *user
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", storage.ErrExecQuery, err)
	}

	return &updated, nil
}

func (r *Repository) getBy(ctx context.Context, op string, where squirrel.Eq) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", storage.ErrBuildQuery, op, err)
	}

	var (
		user        domain.User
		externalUID sql.NullString
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&externalUID,
		&user.Phone,
		&user.Name,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", storage.ErrScanRow, op, err)
	}
	user.ExternalUID = externalUID.String

	return &user, nil
}

// nullable пустой uid хранится как NULL, чтобы не конфликтовать по уникальному индексу
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
