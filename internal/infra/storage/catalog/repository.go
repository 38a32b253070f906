package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bookingjasa/booking-service/internal/domain"
	"github.com/bookingjasa/booking-service/pkg/dbmetrics"
	"github.com/bookingjasa/booking-service/pkg/psqlbuilder"
)

// Repository is the service offerings storage layer. Offerings are
// append-only: no update or delete statements exist here.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a catalog repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new offering. The id is assigned as one greater
// than the current maximum; since offerings are never deleted this is
// gap-free and safe.
func (r *Repository) Create(ctx context.Context, offering *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query := `
		INSERT INTO service_offerings (id, name, category, price, duration_minutes)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4 FROM service_offerings
		RETURNING id, created_at`

	var createdAt sql.NullTime
	err := executor.QueryRowContext(ctx, query,
		offering.Name,
		offering.Category,
		offering.Price,
		offering.DurationMinutes,
	).Scan(&offering.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	offering.CreatedAt = createdAt.Time

	return offering, nil
}

// GetByID fetches an offering by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServiceOffering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"category",
		"price",
		"duration_minutes",
		"created_at",
	).
		From("service_offerings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var offering domain.ServiceOffering
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&offering.ID,
		&offering.Name,
		&offering.Category,
		&offering.Price,
		&offering.DurationMinutes,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOfferingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan offering: %v", ErrScanRow, err)
	}

	offering.CreatedAt = createdAt.Time

	return &offering, nil
}

// List returns all offerings ordered by id.
func (r *Repository) List(ctx context.Context) ([]*domain.ServiceOffering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"category",
		"price",
		"duration_minutes",
		"created_at",
	).
		From("service_offerings").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	offerings := make([]*domain.ServiceOffering, 0)
	for rows.Next() {
		var offering domain.ServiceOffering
		var createdAt sql.NullTime

		err := rows.Scan(
			&offering.ID,
			&offering.Name,
			&offering.Category,
			&offering.Price,
			&offering.DurationMinutes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		offering.CreatedAt = createdAt.Time
		offerings = append(offerings, &offering)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return offerings, nil
}
