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

type TripRepository interface {
	Create(ctx context.Context, trip *entity.Trip) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	FindAll(ctx context.Context) ([]*entity.Trip, error)
	Update(ctx context.Context, trip *entity.Trip) error
	UpdateProfitPercentage(ctx context.Context, id uuid.UUID, pct float64) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tripRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTripRepository(db database.PgxIface, log *zap.Logger) TripRepository {
	return &tripRepository{
		db:  db,
		log: log.With(zap.String("repository", "trip")),
	}
}

func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	query := `
		INSERT INTO trips (id, created_by, title, description, start_date, end_date,
		                  status, profit_percentage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		trip.ID,
		trip.CreatedBy,
		trip.Title,
		trip.Description,
		trip.StartDate,
		trip.EndDate,
		trip.Status,
		trip.ProfitPercentage,
		trip.CreatedAt,
		trip.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create trip",
			zap.Error(err),
			zap.String("title", trip.Title),
		)
		return fmt.Errorf("create trip %s: %w", trip.Title, err)
	}

	return nil
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	query := `
		SELECT id, created_by, title, description, start_date, end_date,
		       status, profit_percentage, created_at, updated_at, deleted_at
		FROM trips
		WHERE id = $1 AND deleted_at IS NULL
	`

	var trip entity.Trip
	err := r.db.QueryRow(ctx, query, id).Scan(
		&trip.ID,
		&trip.CreatedBy,
		&trip.Title,
		&trip.Description,
		&trip.StartDate,
		&trip.EndDate,
		&trip.Status,
		&trip.ProfitPercentage,
		&trip.CreatedAt,
		&trip.UpdatedAt,
		&trip.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find trip by ID",
			zap.Error(err),
			zap.String("trip_id", id.String()),
		)
		return nil, fmt.Errorf("find trip by ID %s: %w", id.String(), err)
	}

	return &trip, nil
}

func (r *tripRepository) FindAll(ctx context.Context) ([]*entity.Trip, error) {
	query := `
		SELECT id, created_by, title, description, start_date, end_date,
		       status, profit_percentage, created_at, updated_at, deleted_at
		FROM trips
		WHERE deleted_at IS NULL
		ORDER BY start_date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find trips", zap.Error(err))
		return nil, fmt.Errorf("find trips: %w", err)
	}
	defer rows.Close()

	var trips []*entity.Trip
	for rows.Next() {
		var trip entity.Trip
		err := rows.Scan(
			&trip.ID,
			&trip.CreatedBy,
			&trip.Title,
			&trip.Description,
			&trip.StartDate,
			&trip.EndDate,
			&trip.Status,
			&trip.ProfitPercentage,
			&trip.CreatedAt,
			&trip.UpdatedAt,
			&trip.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan trip row", zap.Error(err))
			return nil, fmt.Errorf("scan trip row: %w", err)
		}
		trips = append(trips, &trip)
	}

	return trips, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	query := `
		UPDATE trips
		SET title = $2, description = $3, start_date = $4, end_date = $5,
		    status = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		trip.ID,
		trip.Title,
		trip.Description,
		trip.StartDate,
		trip.EndDate,
		trip.Status,
		trip.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update trip",
			zap.Error(err),
			zap.String("trip_id", trip.ID.String()),
		)
		return fmt.Errorf("update trip %s: %w", trip.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trip %s not found", trip.ID.String())
	}

	return nil
}

func (r *tripRepository) UpdateProfitPercentage(ctx context.Context, id uuid.UUID, pct float64) (bool, error) {
	query := `UPDATE trips SET profit_percentage = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, pct)
	if err != nil {
		r.log.Error("Failed to update trip profit percentage",
			zap.Error(err),
			zap.String("trip_id", id.String()),
			zap.Float64("profit_percentage", pct),
		)
		return false, fmt.Errorf("update trip %s profit percentage: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE trips SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete trip",
			zap.Error(err),
			zap.String("trip_id", id.String()),
		)
		return fmt.Errorf("delete trip %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trip %s not found", id.String())
	}

	return nil
}
