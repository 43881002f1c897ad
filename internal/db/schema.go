package db

import (
	"context"
	"database/sql"
	"fmt"
)

const BookingsTable = "bookings"

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
	id INT AUTO_INCREMENT PRIMARY KEY,
	location VARCHAR(100) NOT NULL,
	date DATE NOT NULL,
	time TIME NOT NULL,
	duration INT NOT NULL,
	vehicle VARCHAR(50) NOT NULL,
	email VARCHAR(100) NOT NULL,
	amount DECIMAL(10,2) NOT NULL,
	payment_method VARCHAR(50) NOT NULL,
	payment_status ENUM('Pending','Success','Failed') DEFAULT 'Success',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// Execer is the subset of *sql.DB used for DDL.
type Execer interface {
	QueryRower
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const addPaymentStatus = `ALTER TABLE bookings
	ADD COLUMN payment_status ENUM('Pending','Success','Failed') DEFAULT 'Success' AFTER payment_method`

// EnsureSchema creates the bookings table when it is missing. An existing table without
// payment_status gets the column added.
func EnsureSchema(ctx context.Context, db Execer) (created bool, err error) {
	if HasTable(ctx, db, BookingsTable) {
		if HasColumn(ctx, db, BookingsTable, "payment_status") {
			return false, nil
		}
		if _, err := db.ExecContext(ctx, addPaymentStatus); err != nil {
			return false, fmt.Errorf("add payment_status to %s: %w", BookingsTable, err)
		}
		return false, nil
	}
	if _, err := db.ExecContext(ctx, createBookingsTable); err != nil {
		return false, fmt.Errorf("create table %s: %w", BookingsTable, err)
	}
	return true, nil
}
