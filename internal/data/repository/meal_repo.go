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

type MealRepository interface {
	Create(ctx context.Context, meal *entity.Meal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)
	FindAll(ctx context.Context) ([]*entity.Meal, error)
	Update(ctx context.Context, meal *entity.Meal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type mealRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMealRepository(db database.PgxIface, log *zap.Logger) MealRepository {
	return &mealRepository{
		db:  db,
		log: log.With(zap.String("repository", "meal")),
	}
}

func (r *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	query := `
		INSERT INTO meals (id, name, description, price_per_person,
		                  created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		meal.ID,
		meal.Name,
		meal.Description,
		meal.PricePerPerson,
		meal.CreatedBy,
		meal.CreatedAt,
		meal.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create meal",
			zap.Error(err),
			zap.String("name", meal.Name),
		)
		return fmt.Errorf("create meal %s: %w", meal.Name, err)
	}

	return nil
}

func (r *mealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	query := `
		SELECT id, name, description, price_per_person,
		       created_by, created_at, updated_at, deleted_at
		FROM meals
		WHERE id = $1 AND deleted_at IS NULL
	`

	var meal entity.Meal
	err := r.db.QueryRow(ctx, query, id).Scan(
		&meal.ID,
		&meal.Name,
		&meal.Description,
		&meal.PricePerPerson,
		&meal.CreatedBy,
		&meal.CreatedAt,
		&meal.UpdatedAt,
		&meal.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find meal by ID",
			zap.Error(err),
			zap.String("meal_id", id.String()),
		)
		return nil, fmt.Errorf("find meal by ID %s: %w", id.String(), err)
	}

	return &meal, nil
}

func (r *mealRepository) FindAll(ctx context.Context) ([]*entity.Meal, error) {
	query := `
		SELECT id, name, description, price_per_person,
		       created_by, created_at, updated_at, deleted_at
		FROM meals
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find meals", zap.Error(err))
		return nil, fmt.Errorf("find meals: %w", err)
	}
	defer rows.Close()

	var meals []*entity.Meal
	for rows.Next() {
		var meal entity.Meal
		err := rows.Scan(
			&meal.ID,
			&meal.Name,
			&meal.Description,
			&meal.PricePerPerson,
			&meal.CreatedBy,
			&meal.CreatedAt,
			&meal.UpdatedAt,
			&meal.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan meal row", zap.Error(err))
			return nil, fmt.Errorf("scan meal row: %w", err)
		}
		meals = append(meals, &meal)
	}

	return meals, nil
}

func (r *mealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	query := `
		UPDATE meals
		SET name = $2, description = $3, price_per_person = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		meal.ID,
		meal.Name,
		meal.Description,
		meal.PricePerPerson,
		meal.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update meal",
			zap.Error(err),
			zap.String("meal_id", meal.ID.String()),
		)
		return fmt.Errorf("update meal %s: %w", meal.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("meal %s not found", meal.ID.String())
	}

	return nil
}

func (r *mealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE meals SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete meal",
			zap.Error(err),
			zap.String("meal_id", id.String()),
		)
		return fmt.Errorf("delete meal %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("meal %s not found", id.String())
	}

	return nil
}
