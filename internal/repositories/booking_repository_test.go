package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"techpark/internal/domain"
	"techpark/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func sampleInput() models.BookingInput {
	return models.BookingInput{
		Location:      "mall-parking",
		Date:          "2025-03-09",
		Time:          "09:30",
		Duration:      3,
		Vehicle:       " KA-19-AB-1234 ",
		Email:         "driver@example.com",
		Amount:        60,
		PaymentMethod: "UPI",
	}
}

func TestCreateInsertsWithSuccessStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("mall-parking", "2025-03-09", "09:30", 3, "KA-19-AB-1234", "driver@example.com", 60.0, "UPI", "Success").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := BookingRepository{DB: db}.Create(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateKeepsInjectionAsData(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	in := sampleInput()
	in.Vehicle = "x'); DROP TABLE bookings; --"

	mock.ExpectExec(`(?s)INSERT INTO bookings.*VALUES \(\?, \?, \?, \?, \?, \?, \?, \?, \?\)`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), in.Vehicle, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if _, err := (BookingRepository{DB: db}).Create(context.Background(), in); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreatePropagatesExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").WillReturnError(sql.ErrConnDone)

	if _, err := (BookingRepository{DB: db}).Create(context.Background(), sampleInput()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id,").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "location", "date", "time", "duration", "vehicle", "email", "amount", "payment_method", "payment_status", "created_at"}).
			AddRow(7, "mall-parking", "2025-03-09", "09:30", 3, "KA-19-AB-1234", "driver@example.com", 60.0, "UPI", "Success", created))

	b, err := BookingRepository{DB: db}.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if b.ID != 7 || b.Duration != 3 || b.Amount != 60 || b.PaymentStatus != domain.PaymentSuccess {
		t.Fatalf("unexpected booking %+v", b)
	}
	if !b.CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v", b.CreatedAt)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id,").WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err = BookingRepository{DB: db}.GetByID(context.Background(), 99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetByIDRejectsBadID(t *testing.T) {
	_, err := BookingRepository{}.GetByID(context.Background(), 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "invalid booking id" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
