package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	intconfig "techpark/internal/config"
	"techpark/internal/domain"
	"techpark/internal/domain/models"
	"techpark/internal/pricing"
	"techpark/internal/repositories"
	"techpark/internal/utils"

	"github.com/go-playground/validator/v10"
)

const (
	MsgBookingSaved   = "Booking saved successfully"
	MsgInvalidEmail   = "Invalid email format"
	MsgAmountMismatch = "Amount does not match location rate"
)

// RequiredFields is the intake field list, in the order missing fields are reported.
var RequiredFields = []string{"location", "date", "time", "duration", "vehicle", "email", "amount", "payment_method"}

var validate = validator.New()

// BookingForm is the raw form-encoded intake payload. Every value is a string on the wire.
type BookingForm struct {
	Location      string `form:"location"`
	Date          string `form:"date"`
	Time          string `form:"time"`
	Duration      string `form:"duration"`
	Vehicle       string `form:"vehicle"`
	Email         string `form:"email"`
	Amount        string `form:"amount"`
	PaymentMethod string `form:"payment_method"`
}

func (f BookingForm) value(field string) string {
	switch field {
	case "location":
		return f.Location
	case "date":
		return f.Date
	case "time":
		return f.Time
	case "duration":
		return f.Duration
	case "vehicle":
		return f.Vehicle
	case "email":
		return f.Email
	case "amount":
		return f.Amount
	case "payment_method":
		return f.PaymentMethod
	}
	return ""
}

// MissingFields lists the required fields that are absent or blank.
func (f BookingForm) MissingFields() []string {
	var missing []string
	for _, field := range RequiredFields {
		if strings.TrimSpace(f.value(field)) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// BookingService validates and persists bookings submitted by the booking form.
type BookingService struct {
	Repo   repositories.BookingRepository
	Pricer pricing.Pricer
	// StrictAmount rejects amounts that differ from rate*duration instead of only logging them.
	StrictAmount bool
	RequestID    string
	// Ping checks storage reachability before validation. Defaults to config.EnsureDB.
	Ping func(context.Context) error
}

func (s BookingService) ping(ctx context.Context) error {
	if s.Ping != nil {
		return s.Ping(ctx)
	}
	return intconfig.EnsureDB(ctx)
}

// Validate runs the field checks in order and returns the coerced row on success.
func (s BookingService) Validate(form BookingForm) (models.BookingInput, error) {
	if missing := form.MissingFields(); len(missing) > 0 {
		return models.BookingInput{}, domain.MissingFieldsError{Fields: missing}
	}

	email := strings.TrimSpace(form.Email)
	if err := validate.Var(email, "email"); err != nil {
		return models.BookingInput{}, domain.ValidationError{Field: "email", Msg: MsgInvalidEmail, Err: err}
	}

	return models.BookingInput{
		Location:      strings.TrimSpace(form.Location),
		Date:          strings.TrimSpace(form.Date),
		Time:          strings.TrimSpace(form.Time),
		Duration:      utils.ParseLeadingInt(form.Duration),
		Vehicle:       strings.TrimSpace(form.Vehicle),
		Email:         email,
		Amount:        utils.ParseLeadingFloat(form.Amount),
		PaymentMethod: strings.TrimSpace(form.PaymentMethod),
		PaymentStatus: domain.PaymentSuccess,
	}, nil
}

// Submit is the intake pipeline: reachability, validation, amount policy, insert.
// There is no idempotency key; a resubmitted form creates another row.
func (s BookingService) Submit(ctx context.Context, form BookingForm) (int64, error) {
	if err := s.ping(ctx); err != nil {
		utils.LogEvent(s.RequestID, "booking", "submit", "db unreachable: "+err.Error())
		return 0, domain.StorageError{Msg: "Database connection failed", Err: err}
	}

	in, err := s.Validate(form)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "submit", "rejected: "+err.Error())
		return 0, err
	}

	if err := s.checkAmount(in); err != nil {
		return 0, err
	}

	if !domain.PaymentMethod(in.PaymentMethod).Valid() {
		utils.LogWarn(s.RequestID, "booking", "submit", "unknown payment_method="+in.PaymentMethod)
	}

	id, err := s.Repo.Create(ctx, in)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "submit", "insert failed: "+err.Error())
		return 0, domain.StorageError{Msg: "Database error", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "submit", fmt.Sprintf("booking_id=%d location=%s duration=%d amount=%s method=%s",
		id, in.Location, in.Duration, utils.FormatMoney(in.Amount), in.PaymentMethod))
	return id, nil
}

// checkAmount compares the client amount with the catalog price. The client value is
// persisted as sent unless StrictAmount is on.
func (s BookingService) checkAmount(in models.BookingInput) error {
	expected := float64(s.Pricer.Amount(in.Location, in.Duration))
	if math.Abs(expected-in.Amount) < 0.005 {
		return nil
	}
	msg := fmt.Sprintf("amount mismatch location=%s duration=%d sent=%s expected=%s",
		in.Location, in.Duration, utils.FormatMoney(in.Amount), utils.FormatMoney(expected))
	if s.StrictAmount {
		utils.LogEvent(s.RequestID, "booking", "submit", "rejected: "+msg)
		return domain.ValidationError{Field: "amount", Msg: MsgAmountMismatch}
	}
	utils.LogWarn(s.RequestID, "booking", "submit", msg)
	return nil
}
