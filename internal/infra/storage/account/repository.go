package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bookingjasa/booking-service/internal/domain"
	"github.com/bookingjasa/booking-service/pkg/dbmetrics"
	"github.com/bookingjasa/booking-service/pkg/psqlbuilder"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint errors.
const uniqueViolation = "23505"

// Repository is the account storage layer consulted by the
// authentication gate.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an accounts repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new account. Returns ErrUsernameTaken when the
// username is already registered.
func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("accounts").
		Columns("username", "password", "role").
		Values(account.Username, account.Password, account.Role).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	account.CreatedAt = createdAt.Time

	return account, nil
}

// GetByUsername fetches an account by its login identifier.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"username",
		"password",
		"role",
		"created_at",
	).
		From("accounts").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var account domain.Account
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&account.Username,
		&account.Password,
		&account.Role,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan account: %v", ErrScanRow, err)
	}

	account.CreatedAt = createdAt.Time

	return &account, nil
}
