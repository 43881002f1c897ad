package handlers

import (
	"context"
	"database/sql"

	"techpark/internal/catalog"
	"techpark/internal/metrics"
	"techpark/internal/pricing"
	"techpark/internal/repositories"
)

// API carries the dependencies shared by the booking handlers.
type API struct {
	Catalog      *catalog.Catalog
	Metrics      *metrics.Registry
	StrictAmount bool
	// DB overrides the shared config.DB handle; Ping overrides config.EnsureDB.
	DB   *sql.DB
	Ping func(context.Context) error
}

func (a API) catalog() *catalog.Catalog {
	if a.Catalog != nil {
		return a.Catalog
	}
	return catalog.Default()
}

func (a API) pricer() pricing.Pricer {
	return pricing.New(a.catalog())
}

func (a API) bookings() repositories.BookingRepository {
	return repositories.BookingRepository{DB: a.DB}
}

func (a API) observeIntake(outcome string) {
	if a.Metrics != nil {
		a.Metrics.ObserveIntake(outcome)
	}
}

func (a API) ping() func(context.Context) error {
	if a.Ping != nil {
		return a.Ping
	}
	if a.DB != nil {
		return a.DB.PingContext
	}
	return nil
}
