package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "techpark/internal/config"
	intdb "techpark/internal/db"
	"techpark/internal/domain"
	"techpark/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts one booking row and returns the auto-increment id.
// Values go through placeholders only; nothing from the request is spliced into SQL.
func (r BookingRepository) Create(ctx context.Context, in models.BookingInput) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, intconfig.ErrNoDB
	}

	status := in.PaymentStatus
	if status == "" {
		status = domain.PaymentSuccess
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO `+intdb.BookingsTable+`
			(location, date, time, duration, vehicle, email, amount, payment_method, payment_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(in.Location),
		strings.TrimSpace(in.Date),
		strings.TrimSpace(in.Time),
		in.Duration,
		strings.TrimSpace(in.Vehicle),
		strings.TrimSpace(in.Email),
		in.Amount,
		strings.TrimSpace(in.PaymentMethod),
		string(status),
	)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read insert id: %w", err)
	}
	return id, nil
}

// GetByID loads a stored booking. Missing rows come back as domain.NotFoundError.
func (r BookingRepository) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}
	db := r.db()
	if db == nil {
		return models.Booking{}, intconfig.ErrNoDB
	}

	var (
		b      models.Booking
		status string
	)
	err := db.QueryRowContext(ctx, `
		SELECT id,
		       location,
		       DATE_FORMAT(date, '%Y-%m-%d'),
		       TIME_FORMAT(time, '%H:%i'),
		       duration,
		       vehicle,
		       email,
		       amount,
		       payment_method,
		       COALESCE(payment_status, ''),
		       created_at
		FROM `+intdb.BookingsTable+`
		WHERE id=? LIMIT 1`, id).Scan(
		&b.ID,
		&b.Location,
		&b.Date,
		&b.Time,
		&b.Duration,
		&b.Vehicle,
		&b.Email,
		&b.Amount,
		&b.PaymentMethod,
		&status,
		&b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}
	b.PaymentStatus = domain.PaymentStatus(status)
	return b, nil
}
