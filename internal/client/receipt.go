package client

import (
	"fmt"
	"strconv"
	"strings"

	"techpark/internal/domain"
	"techpark/internal/utils"
)

// Confirmation is what the success page shows. It is built from the local draft; only the
// booking id comes from the server.
type Confirmation struct {
	BookingID     int64
	Location      string
	LocationName  string
	Date          string
	Time          string
	Hours         int
	Vehicle       string
	Email         string
	Amount        int64
	PaymentMethod domain.PaymentMethod
}

// Lines renders the confirmation page rows; empty values show as "--".
func (c Confirmation) Lines() []string {
	dash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "--"
		}
		return s
	}
	duration := "--"
	if c.Hours > 0 {
		duration = utils.HoursLabel(c.Hours)
	}
	amount := "--"
	if c.Amount > 0 {
		amount = utils.FormatRupee(c.Amount)
	}
	date := "--"
	if c.Date != "" {
		date = utils.DisplayDate(c.Date)
	}

	return []string{
		"Location: " + dash(c.LocationName),
		"Date: " + date,
		"Time: " + dash(c.Time),
		"Duration: " + duration,
		"Vehicle: " + dash(c.Vehicle),
		"Amount: " + amount,
	}
}

// Receipt is the downloadable plain-text receipt.
func (c Confirmation) Receipt() string {
	id := "N/A"
	if c.BookingID > 0 {
		id = strconv.FormatInt(c.BookingID, 10)
	}

	var b strings.Builder
	b.WriteString("Parking Receipt\n")
	b.WriteString("------------------------\n")
	fmt.Fprintf(&b, "Booking ID: %s\n", id)
	fmt.Fprintf(&b, "Location: %s\n", c.LocationName)
	fmt.Fprintf(&b, "Date: %s\n", c.Date)
	fmt.Fprintf(&b, "Time: %s\n", c.Time)
	fmt.Fprintf(&b, "Duration: %d hours\n", c.Hours)
	fmt.Fprintf(&b, "Vehicle: %s\n", c.Vehicle)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Amount Paid: %s\n", utils.FormatRupee(c.Amount))
	fmt.Fprintf(&b, "Payment Method: %s\n", c.PaymentMethod)
	b.WriteString("------------------------\n")
	b.WriteString("Thank you for booking with TechPark!\n")
	return b.String()
}
