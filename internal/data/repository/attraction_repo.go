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

type AttractionRepository interface {
	Create(ctx context.Context, attraction *entity.Attraction) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Attraction, error)
	FindAll(ctx context.Context) ([]*entity.Attraction, error)
	Update(ctx context.Context, attraction *entity.Attraction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type attractionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAttractionRepository(db database.PgxIface, log *zap.Logger) AttractionRepository {
	return &attractionRepository{
		db:  db,
		log: log.With(zap.String("repository", "attraction")),
	}
}

func (r *attractionRepository) Create(ctx context.Context, attraction *entity.Attraction) error {
	query := `
		INSERT INTO attractions (id, name, location, description, price_per_person,
		                        created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		attraction.ID,
		attraction.Name,
		attraction.Location,
		attraction.Description,
		attraction.PricePerPerson,
		attraction.CreatedBy,
		attraction.CreatedAt,
		attraction.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create attraction",
			zap.Error(err),
			zap.String("name", attraction.Name),
		)
		return fmt.Errorf("create attraction %s: %w", attraction.Name, err)
	}

	return nil
}

func (r *attractionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Attraction, error) {
	query := `
		SELECT id, name, location, description, price_per_person,
		       created_by, created_at, updated_at, deleted_at
		FROM attractions
		WHERE id = $1 AND deleted_at IS NULL
	`

	var attraction entity.Attraction
	err := r.db.QueryRow(ctx, query, id).Scan(
		&attraction.ID,
		&attraction.Name,
		&attraction.Location,
		&attraction.Description,
		&attraction.PricePerPerson,
		&attraction.CreatedBy,
		&attraction.CreatedAt,
		&attraction.UpdatedAt,
		&attraction.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find attraction by ID",
			zap.Error(err),
			zap.String("attraction_id", id.String()),
		)
		return nil, fmt.Errorf("find attraction by ID %s: %w", id.String(), err)
	}

	return &attraction, nil
}

func (r *attractionRepository) FindAll(ctx context.Context) ([]*entity.Attraction, error) {
	query := `
		SELECT id, name, location, description, price_per_person,
		       created_by, created_at, updated_at, deleted_at
		FROM attractions
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find attractions", zap.Error(err))
		return nil, fmt.Errorf("find attractions: %w", err)
	}
	defer rows.Close()

	var attractions []*entity.Attraction
	for rows.Next() {
		var attraction entity.Attraction
		err := rows.Scan(
			&attraction.ID,
			&attraction.Name,
			&attraction.Location,
			&attraction.Description,
			&attraction.PricePerPerson,
			&attraction.CreatedBy,
			&attraction.CreatedAt,
			&attraction.UpdatedAt,
			&attraction.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan attraction row", zap.Error(err))
			return nil, fmt.Errorf("scan attraction row: %w", err)
		}
		attractions = append(attractions, &attraction)
	}

	return attractions, nil
}

func (r *attractionRepository) Update(ctx context.Context, attraction *entity.Attraction) error {
	query := `
		UPDATE attractions
		SET name = $2, location = $3, description = $4, price_per_person = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		attraction.ID,
		attraction.Name,
		attraction.Location,
		attraction.Description,
		attraction.PricePerPerson,
		attraction.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update attraction",
			zap.Error(err),
			zap.String("attraction_id", attraction.ID.String()),
		)
		return fmt.Errorf("update attraction %s: %w", attraction.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("attraction %s not found", attraction.ID.String())
	}

	return nil
}

func (r *attractionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE attractions SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete attraction",
			zap.Error(err),
			zap.String("attraction_id", id.String()),
		)
		return fmt.Errorf("delete attraction %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("attraction %s not found", id.String())
	}

	return nil
}
