package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"techpark/internal/catalog"
	"techpark/internal/domain"
	"techpark/internal/pricing"
	"techpark/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func validForm() BookingForm {
	return BookingForm{
		Location:      "mall-parking",
		Date:          "2025-03-09",
		Time:          "09:30",
		Duration:      "3",
		Vehicle:       "KA-19-AB-1234",
		Email:         "driver@example.com",
		Amount:        "60",
		PaymentMethod: "UPI",
	}
}

func newService(t *testing.T) (BookingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return BookingService{
		Repo:   repositories.BookingRepository{DB: db},
		Pricer: pricing.New(catalog.Default()),
		Ping:   func(context.Context) error { return nil },
	}, mock
}

func TestSubmitPersistsBooking(t *testing.T) {
	svc, mock := newService(t)
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("mall-parking", "2025-03-09", "09:30", 3, "KA-19-AB-1234", "driver@example.com", 60.0, "UPI", "Success").
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := svc.Submit(context.Background(), validForm())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if id != 1 {
		t.Fatalf("id = %d, want 1", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitDuplicateCreatesNewRow(t *testing.T) {
	svc, mock := newService(t)
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(5, 1))

	first, err := svc.Submit(context.Background(), validForm())
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.Submit(context.Background(), validForm())
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second != first+1 {
		t.Fatalf("ids not increasing: %d then %d", first, second)
	}
}

func TestSubmitListsEveryMissingField(t *testing.T) {
	svc, _ := newService(t)
	form := validForm()
	form.Date = ""
	form.Vehicle = "   "
	form.PaymentMethod = ""

	_, err := svc.Submit(context.Background(), form)
	var missing domain.MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if got := err.Error(); got != "Missing required fields: date, vehicle, payment_method" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestSubmitMissingEmailMentionsEmail(t *testing.T) {
	svc, _ := newService(t)
	form := validForm()
	form.Email = ""

	_, err := svc.Submit(context.Background(), form)
	if !domain.IsValidation(err) || !strings.Contains(err.Error(), "email") {
		t.Fatalf("expected validation error naming email, got %v", err)
	}
}

func TestSubmitRejectsMalformedEmail(t *testing.T) {
	svc, _ := newService(t)
	form := validForm()
	form.Email = "not-an-email"

	_, err := svc.Submit(context.Background(), form)
	if err == nil || err.Error() != MsgInvalidEmail {
		t.Fatalf("expected %q, got %v", MsgInvalidEmail, err)
	}
}

func TestSubmitMissingFieldsWinOverBadEmail(t *testing.T) {
	svc, _ := newService(t)
	form := validForm()
	form.Email = "nope"
	form.Amount = ""

	_, err := svc.Submit(context.Background(), form)
	if err == nil || err.Error() != "Missing required fields: amount" {
		t.Fatalf("missing fields should be reported first, got %v", err)
	}
}

func TestSubmitConnectionFailureBeforeValidation(t *testing.T) {
	svc, mock := newService(t)
	svc.Ping = func(context.Context) error { return errors.New("dial tcp: connection refused") }

	_, err := svc.Submit(context.Background(), BookingForm{})
	if !domain.IsStorage(err) {
		t.Fatalf("expected storage error even for an empty form, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Database connection failed: ") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no statement should run: %v", err)
	}
}

func TestSubmitWithoutConnectionReportsEnglishError(t *testing.T) {
	svc := BookingService{Pricer: pricing.New(catalog.Default())}

	_, err := svc.Submit(context.Background(), validForm())
	if !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if err.Error() != "Database connection failed: database not connected" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestSubmitInsertFailure(t *testing.T) {
	svc, mock := newService(t)
	mock.ExpectExec("INSERT INTO bookings").WillReturnError(errors.New("Data too long for column 'vehicle'"))

	_, err := svc.Submit(context.Background(), validForm())
	if !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if err.Error() != "Database error: Data too long for column 'vehicle'" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestSubmitTrustsClientAmountByDefault(t *testing.T) {
	svc, mock := newService(t)
	form := validForm()
	form.Amount = "1.50"

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), 1.5, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(9, 1))

	if _, err := svc.Submit(context.Background(), form); err != nil {
		t.Fatalf("mismatching amount should be stored as sent: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitStrictAmountRejectsMismatch(t *testing.T) {
	svc, mock := newService(t)
	svc.StrictAmount = true
	form := validForm()
	form.Amount = "1"

	_, err := svc.Submit(context.Background(), form)
	if !domain.IsValidation(err) || err.Error() != MsgAmountMismatch {
		t.Fatalf("expected amount mismatch, got %v", err)
	}

	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(2, 1))
	if _, err := svc.Submit(context.Background(), validForm()); err != nil {
		t.Fatalf("matching amount should pass strict mode: %v", err)
	}
}

func TestSubmitStrictAmountRejectsOutOfRangeDuration(t *testing.T) {
	svc, mock := newService(t)
	svc.StrictAmount = true

	for _, d := range []string{"-3", "99999999999999999"} {
		form := validForm()
		form.Location = "airport-lot"
		form.Duration = d
		form.Amount = "-3446744073709551766"

		_, err := svc.Submit(context.Background(), form)
		if !domain.IsValidation(err) || err.Error() != MsgAmountMismatch {
			t.Fatalf("duration %q: expected amount mismatch, got %v", d, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no insert expected: %v", err)
	}
}

func TestValidateCoercesNumbers(t *testing.T) {
	form := validForm()
	form.Duration = "10 hours"
	form.Amount = "1500.00"
	form.Location = " airport-lot "

	in, err := BookingService{}.Validate(form)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if in.Duration != 10 || in.Amount != 1500 || in.Location != "airport-lot" {
		t.Fatalf("unexpected coercion %+v", in)
	}
	if in.PaymentStatus != domain.PaymentSuccess {
		t.Fatalf("payment status = %q", in.PaymentStatus)
	}
}
