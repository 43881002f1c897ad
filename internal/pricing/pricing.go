// Package pricing computes the price of a parking booking from the location catalog.
// The client form and the server quote endpoint share it.
package pricing

import (
	"fmt"
	"math"
	"strings"

	"techpark/internal/catalog"
	"techpark/internal/utils"
)

const (
	// DailyPassHours is the duration from which the daily pass saving is advertised.
	DailyPassHours = 8
	// UpsellHours is the duration from which the daily pass tip is shown.
	UpsellHours = 4
	// MaxHours caps a single booking at 30 days.
	MaxHours = 720

	dailyPassDiscount = 0.10
)

type HintKind string

const (
	HintNone      HintKind = ""
	HintUpsell    HintKind = "upsell"
	HintDailyPass HintKind = "daily_pass"
)

// Hint is the discount message shown under the price breakdown.
type Hint struct {
	Kind    HintKind `json:"kind,omitempty"`
	Savings int64    `json:"savings,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Quote is the derived price state for one draft. A zero Quote means "nothing to show".
type Quote struct {
	Ready        bool   `json:"ready"`
	LocationID   string `json:"location"`
	LocationName string `json:"location_name"`
	Date         string `json:"date,omitempty"`
	Time         string `json:"time,omitempty"`
	Hours        int    `json:"duration"`
	Rate         int64  `json:"rate"`
	Amount       int64  `json:"amount"`
	Hint         Hint   `json:"hint"`
}

type Pricer struct {
	Catalog *catalog.Catalog
}

func New(c *catalog.Catalog) Pricer {
	return Pricer{Catalog: c}
}

func (p Pricer) catalog() *catalog.Catalog {
	if p.Catalog != nil {
		return p.Catalog
	}
	return catalog.Default()
}

// Quote prices location for duration hours. Both must be present, otherwise the empty Quote
// is returned. A duration outside 1..MaxHours gives a Quote that is not Ready and has no
// amount. Unknown locations price at rate 0.
func (p Pricer) Quote(location, duration, date, timeOfDay string) Quote {
	location = strings.TrimSpace(location)
	duration = strings.TrimSpace(duration)
	if location == "" || duration == "" {
		return Quote{}
	}

	c := p.catalog()
	hours := utils.ParseLeadingInt(duration)
	rate := c.Rate(location)
	if !ValidHours(hours) {
		return Quote{
			LocationID:   location,
			LocationName: c.Name(location),
			Date:         strings.TrimSpace(date),
			Time:         strings.TrimSpace(timeOfDay),
			Hours:        hours,
			Rate:         rate,
		}
	}
	amount := rate * int64(hours)

	return Quote{
		Ready:        true,
		LocationID:   location,
		LocationName: c.Name(location),
		Date:         strings.TrimSpace(date),
		Time:         strings.TrimSpace(timeOfDay),
		Hours:        hours,
		Rate:         rate,
		Amount:       amount,
		Hint:         DiscountHint(hours, amount),
	}
}

// ValidHours reports whether hours is a bookable duration.
func ValidHours(hours int) bool {
	return hours > 0 && hours <= MaxHours
}

// Amount is rate(location) * hours, or 0 when hours is not bookable.
func (p Pricer) Amount(location string, hours int) int64 {
	if !ValidHours(hours) {
		return 0
	}
	return p.catalog().Rate(location) * int64(hours)
}

// DiscountHint picks the message for a duration: the daily pass saving from 8 hours,
// a tip from 4 hours, nothing below.
func DiscountHint(hours int, amount int64) Hint {
	switch {
	case hours >= DailyPassHours:
		savings := int64(math.Round(float64(amount) * dailyPassDiscount))
		return Hint{
			Kind:    HintDailyPass,
			Savings: savings,
			Message: fmt.Sprintf("Long duration booking! You could save %s with our daily pass.", utils.FormatRupee(savings)),
		}
	case hours >= UpsellHours:
		return Hint{
			Kind:    HintUpsell,
			Message: fmt.Sprintf("Tip: Book for %d+ hours to get daily pass discounts!", DailyPassHours),
		}
	default:
		return Hint{}
	}
}

// Breakdown renders the booking summary lines shown next to the total.
func (q Quote) Breakdown() []string {
	if !q.Ready {
		return nil
	}
	lines := []string{"Location: " + q.LocationName}
	if q.Date != "" {
		lines = append(lines, "Date: "+utils.DisplayDate(q.Date))
	}
	if q.Time != "" {
		lines = append(lines, "Time: "+q.Time)
	}
	lines = append(lines,
		"Duration: "+utils.HoursLabel(q.Hours),
		"Rate: "+utils.FormatRupee(q.Rate)+"/hour",
		"Total Cost: "+utils.FormatRupee(q.Amount),
	)
	if q.Hint.Message != "" {
		lines = append(lines, q.Hint.Message)
	}
	return lines
}
