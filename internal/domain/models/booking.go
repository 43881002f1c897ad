package models

import (
	"time"

	"techpark/internal/domain"
)

// BookingInput is the coerced intake payload, ready to insert.
type BookingInput struct {
	Location      string
	Date          string
	Time          string
	Duration      int
	Vehicle       string
	Email         string
	Amount        float64
	PaymentMethod string
	PaymentStatus domain.PaymentStatus
}

// Booking is a persisted row of the bookings table.
type Booking struct {
	ID            int64                `json:"id"`
	Location      string               `json:"location"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Duration      int                  `json:"duration"`
	Vehicle       string               `json:"vehicle"`
	Email         string               `json:"email"`
	Amount        float64              `json:"amount"`
	PaymentMethod string               `json:"payment_method"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
}
