package repository

import (
	"context"
	"fmt"

	"travel-backoffice/internal/data/entity"
	"travel-backoffice/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TripAdditionalRepository interface {
	Create(ctx context.Context, additional *entity.TripAdditional) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TripAdditional, error)
	FindByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.TripAdditional, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type tripAdditionalRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTripAdditionalRepository(db database.PgxIface, log *zap.Logger) TripAdditionalRepository {
	return &tripAdditionalRepository{
		db:  db,
		log: log.With(zap.String("repository", "trip_additional")),
	}
}

func (r *tripAdditionalRepository) Create(ctx context.Context, additional *entity.TripAdditional) error {
	query := `
		INSERT INTO trip_additionals (id, trip_id, name, description, price_per_unit,
		                             units, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		additional.ID,
		additional.TripID,
		additional.Name,
		additional.Description,
		additional.PricePerUnit,
		additional.Units,
		additional.CreatedAt,
		additional.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create trip additional",
			zap.Error(err),
			zap.String("trip_id", additional.TripID.String()),
			zap.String("name", additional.Name),
		)
		return fmt.Errorf("create trip additional %s: %w", additional.Name, err)
	}

	return nil
}

func (r *tripAdditionalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TripAdditional, error) {
	query := `
		SELECT id, trip_id, name, description, price_per_unit, units,
		       created_at, updated_at, deleted_at
		FROM trip_additionals
		WHERE id = $1 AND deleted_at IS NULL
	`

	var additional entity.TripAdditional
	err := r.db.QueryRow(ctx, query, id).Scan(
		&additional.ID,
		&additional.TripID,
		&additional.Name,
		&additional.Description,
		&additional.PricePerUnit,
		&additional.Units,
		&additional.CreatedAt,
		&additional.UpdatedAt,
		&additional.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find trip additional by ID",
			zap.Error(err),
			zap.String("additional_id", id.String()),
		)
		return nil, fmt.Errorf("find trip additional by ID %s: %w", id.String(), err)
	}

	return &additional, nil
}

func (r *tripAdditionalRepository) FindByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.TripAdditional, error) {
	query := `
		SELECT id, trip_id, name, description, price_per_unit, units,
		       created_at, updated_at, deleted_at
		FROM trip_additionals
		WHERE trip_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, tripID)
	if err != nil {
		r.log.Error("Failed to find trip additionals",
			zap.Error(err),
			zap.String("trip_id", tripID.String()),
		)
		return nil, fmt.Errorf("find additionals for trip %s: %w", tripID.String(), err)
	}
	defer rows.Close()

	var additionals []*entity.TripAdditional
	for rows.Next() {
		var additional entity.TripAdditional
		err := rows.Scan(
			&additional.ID,
			&additional.TripID,
			&additional.Name,
			&additional.Description,
			&additional.PricePerUnit,
			&additional.Units,
			&additional.CreatedAt,
			&additional.UpdatedAt,
			&additional.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan trip additional row", zap.Error(err))
			return nil, fmt.Errorf("scan trip additional row: %w", err)
		}
		additionals = append(additionals, &additional)
	}

	return additionals, nil
}

func (r *tripAdditionalRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE trip_additionals SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete trip additional",
			zap.Error(err),
			zap.String("additional_id", id.String()),
		)
		return false, fmt.Errorf("delete trip additional %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
