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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	UpdateProfitPercentage(ctx context.Context, id uuid.UUID, pct float64) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// selectBookings joins each booking with the offering row it references.
// Deleted offerings join as NULL so the booking survives with no
// resolvable service, which the pricing layer skips.
const selectBookings = `
	SELECT b.id, b.client_id, b.start_date, b.end_date, b.number_of_people,
	       b.status, b.profit_percentage,
	       b.accommodation_id, b.transportation_id, b.attraction_id, b.meal_id,
	       b.created_at, b.updated_at,
	       a.name, a.price_per_night,
	       t.type, t.price_per_person,
	       att.name, att.price_per_person,
	       m.name, m.price_per_person
	FROM bookings b
	LEFT JOIN accommodations a ON a.id = b.accommodation_id AND a.deleted_at IS NULL
	LEFT JOIN transportation t ON t.id = b.transportation_id AND t.deleted_at IS NULL
	LEFT JOIN attractions att ON att.id = b.attraction_id AND att.deleted_at IS NULL
	LEFT JOIN meals m ON m.id = b.meal_id AND m.deleted_at IS NULL
`

type bookingRow interface {
	Scan(dest ...any) error
}

func scanBooking(row bookingRow) (*entity.Booking, error) {
	var booking entity.Booking
	var (
		accName  *string
		accRate  *float64
		trType   *string
		trRate   *float64
		attName  *string
		attRate  *float64
		mealName *string
		mealRate *float64
	)

	err := row.Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.NumberOfPeople,
		&booking.Status,
		&booking.ProfitPercentage,
		&booking.AccommodationID,
		&booking.TransportationID,
		&booking.AttractionID,
		&booking.MealID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&accName, &accRate,
		&trType, &trRate,
		&attName, &attRate,
		&mealName, &mealRate,
	)
	if err != nil {
		return nil, err
	}

	if accName != nil && accRate != nil {
		booking.Accommodation = &entity.Accommodation{Name: *accName, PricePerNight: *accRate}
	}
	if trType != nil && trRate != nil {
		booking.Transportation = &entity.Transportation{Type: *trType, PricePerPerson: *trRate}
	}
	if attName != nil && attRate != nil {
		booking.Attraction = &entity.Attraction{Name: *attName, PricePerPerson: *attRate}
	}
	if mealName != nil && mealRate != nil {
		booking.Meal = &entity.Meal{Name: *mealName, PricePerPerson: *mealRate}
	}

	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, client_id, start_date, end_date, number_of_people,
		                     status, profit_percentage,
		                     accommodation_id, transportation_id, attraction_id, meal_id,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ClientID,
		booking.StartDate,
		booking.EndDate,
		booking.NumberOfPeople,
		booking.Status,
		booking.ProfitPercentage,
		booking.AccommodationID,
		booking.TransportationID,
		booking.AttractionID,
		booking.MealID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("client_id", booking.ClientID.String()),
		)
		return fmt.Errorf("create booking for client %s: %w", booking.ClientID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := selectBookings + ` WHERE b.id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.Booking, error) {
	query := selectBookings + ` WHERE b.client_id = $1 ORDER BY b.created_at`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		r.log.Error("Failed to find bookings by client ID",
			zap.Error(err),
			zap.String("client_id", clientID.String()),
		)
		return nil, fmt.Errorf("find bookings by client ID %s: %w", clientID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := selectBookings + ` ORDER BY b.created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all bookings", zap.Error(err))
		return nil, fmt.Errorf("find all bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindPage(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := selectBookings + ` ORDER BY b.created_at LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find booking page",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find booking page limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return total, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateProfitPercentage(ctx context.Context, id uuid.UUID, pct float64) (bool, error) {
	query := `UPDATE bookings SET profit_percentage = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, pct)
	if err != nil {
		r.log.Error("Failed to update profit percentage",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.Float64("profit_percentage", pct),
		)
		return false, fmt.Errorf("update booking %s profit percentage: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return false, fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return true, nil
}
