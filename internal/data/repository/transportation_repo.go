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

type TransportationRepository interface {
	Create(ctx context.Context, transportation *entity.Transportation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transportation, error)
	FindAll(ctx context.Context) ([]*entity.Transportation, error)
	Update(ctx context.Context, transportation *entity.Transportation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type transportationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransportationRepository(db database.PgxIface, log *zap.Logger) TransportationRepository {
	return &transportationRepository{
		db:  db,
		log: log.With(zap.String("repository", "transportation")),
	}
}

func (r *transportationRepository) Create(ctx context.Context, transportation *entity.Transportation) error {
	query := `
		INSERT INTO transportation (id, type, description, price_per_person,
		                           created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		transportation.ID,
		transportation.Type,
		transportation.Description,
		transportation.PricePerPerson,
		transportation.CreatedBy,
		transportation.CreatedAt,
		transportation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create transportation",
			zap.Error(err),
			zap.String("type", transportation.Type),
		)
		return fmt.Errorf("create transportation %s: %w", transportation.Type, err)
	}

	return nil
}

func (r *transportationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transportation, error) {
	query := `
		SELECT id, type, description, price_per_person,
		       created_by, created_at, updated_at, deleted_at
		FROM transportation
		WHERE id = $1 AND deleted_at IS NULL
	`

	var transportation entity.Transportation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&transportation.ID,
		&transportation.Type,
		&transportation.Description,
		&transportation.PricePerPerson,
		&transportation.CreatedBy,
		&transportation.CreatedAt,
		&transportation.UpdatedAt,
		&transportation.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find transportation by ID",
			zap.Error(err),
			zap.String("transportation_id", id.String()),
		)
		return nil, fmt.Errorf("find transportation by ID %s: %w", id.String(), err)
	}

	return &transportation, nil
}

func (r *transportationRepository) FindAll(ctx context.Context) ([]*entity.Transportation, error) {
	query := `
		SELECT id, type, description, price_per_person,
		       created_by, created_at, updated_at, deleted_at
		FROM transportation
		WHERE deleted_at IS NULL
		ORDER BY type
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find transportation options", zap.Error(err))
		return nil, fmt.Errorf("find transportation options: %w", err)
	}
	defer rows.Close()

	var options []*entity.Transportation
	for rows.Next() {
		var transportation entity.Transportation
		err := rows.Scan(
			&transportation.ID,
			&transportation.Type,
			&transportation.Description,
			&transportation.PricePerPerson,
			&transportation.CreatedBy,
			&transportation.CreatedAt,
			&transportation.UpdatedAt,
			&transportation.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan transportation row", zap.Error(err))
			return nil, fmt.Errorf("scan transportation row: %w", err)
		}
		options = append(options, &transportation)
	}

	return options, nil
}

func (r *transportationRepository) Update(ctx context.Context, transportation *entity.Transportation) error {
	query := `
		UPDATE transportation
		SET type = $2, description = $3, price_per_person = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		transportation.ID,
		transportation.Type,
		transportation.Description,
		transportation.PricePerPerson,
		transportation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update transportation",
			zap.Error(err),
			zap.String("transportation_id", transportation.ID.String()),
		)
		return fmt.Errorf("update transportation %s: %w", transportation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transportation %s not found", transportation.ID.String())
	}

	return nil
}

func (r *transportationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE transportation SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete transportation",
			zap.Error(err),
			zap.String("transportation_id", id.String()),
		)
		return fmt.Errorf("delete transportation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transportation %s not found", id.String())
	}

	return nil
}
