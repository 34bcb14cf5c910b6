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

type AccommodationRepository interface {
	Create(ctx context.Context, accommodation *entity.Accommodation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error)
	FindAll(ctx context.Context) ([]*entity.Accommodation, error)
	Update(ctx context.Context, accommodation *entity.Accommodation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type accommodationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccommodationRepository(db database.PgxIface, log *zap.Logger) AccommodationRepository {
	return &accommodationRepository{
		db:  db,
		log: log.With(zap.String("repository", "accommodation")),
	}
}

func (r *accommodationRepository) Create(ctx context.Context, accommodation *entity.Accommodation) error {
	query := `
		INSERT INTO accommodations (id, name, location, description, price_per_night,
		                           created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		accommodation.ID,
		accommodation.Name,
		accommodation.Location,
		accommodation.Description,
		accommodation.PricePerNight,
		accommodation.CreatedBy,
		accommodation.CreatedAt,
		accommodation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create accommodation",
			zap.Error(err),
			zap.String("name", accommodation.Name),
		)
		return fmt.Errorf("create accommodation %s: %w", accommodation.Name, err)
	}

	return nil
}

func (r *accommodationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error) {
	query := `
		SELECT id, name, location, description, price_per_night,
		       created_by, created_at, updated_at, deleted_at
		FROM accommodations
		WHERE id = $1 AND deleted_at IS NULL
	`

	var accommodation entity.Accommodation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&accommodation.ID,
		&accommodation.Name,
		&accommodation.Location,
		&accommodation.Description,
		&accommodation.PricePerNight,
		&accommodation.CreatedBy,
		&accommodation.CreatedAt,
		&accommodation.UpdatedAt,
		&accommodation.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find accommodation by ID",
			zap.Error(err),
			zap.String("accommodation_id", id.String()),
		)
		return nil, fmt.Errorf("find accommodation by ID %s: %w", id.String(), err)
	}

	return &accommodation, nil
}

func (r *accommodationRepository) FindAll(ctx context.Context) ([]*entity.Accommodation, error) {
	query := `
		SELECT id, name, location, description, price_per_night,
		       created_by, created_at, updated_at, deleted_at
		FROM accommodations
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find accommodations", zap.Error(err))
		return nil, fmt.Errorf("find accommodations: %w", err)
	}
	defer rows.Close()

	var accommodations []*entity.Accommodation
	for rows.Next() {
		var accommodation entity.Accommodation
		err := rows.Scan(
			&accommodation.ID,
			&accommodation.Name,
			&accommodation.Location,
			&accommodation.Description,
			&accommodation.PricePerNight,
			&accommodation.CreatedBy,
			&accommodation.CreatedAt,
			&accommodation.UpdatedAt,
			&accommodation.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan accommodation row", zap.Error(err))
			return nil, fmt.Errorf("scan accommodation row: %w", err)
		}
		accommodations = append(accommodations, &accommodation)
	}

	return accommodations, nil
}

func (r *accommodationRepository) Update(ctx context.Context, accommodation *entity.Accommodation) error {
	query := `
		UPDATE accommodations
		SET name = $2, location = $3, description = $4, price_per_night = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		accommodation.ID,
		accommodation.Name,
		accommodation.Location,
		accommodation.Description,
		accommodation.PricePerNight,
		accommodation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update accommodation",
			zap.Error(err),
			zap.String("accommodation_id", accommodation.ID.String()),
		)
		return fmt.Errorf("update accommodation %s: %w", accommodation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("accommodation %s not found", accommodation.ID.String())
	}

	return nil
}

func (r *accommodationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Soft delete; bookings that reference this row keep their FK and
	// simply stop producing line items.
	query := `UPDATE accommodations SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete accommodation",
			zap.Error(err),
			zap.String("accommodation_id", id.String()),
		)
		return fmt.Errorf("delete accommodation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("accommodation %s not found", id.String())
	}

	return nil
}
