package handlers

import (
	"net/http"

	"techpark/internal/pricing"

	"github.com/gin-gonic/gin"
)

// ListLocations returns the parking sites shown on the map and in the location picker.
func (a API) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"locations": a.catalog().All(),
	})
}

type quoteRequest struct {
	Location string `form:"location" json:"location"`
	Duration string `form:"duration" json:"duration"`
	Date     string `form:"date" json:"date"`
	Time     string `form:"time" json:"time"`
}

// QuoteResponse wraps a price quote with its display breakdown.
type QuoteResponse struct {
	Success   bool          `json:"success"`
	Quote     pricing.Quote `json:"quote"`
	Breakdown []string      `json:"breakdown"`
}

// Quote prices a draft with the same rules the booking form uses.
func (a API) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBind(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid quote request")
		return
	}

	q := a.pricer().Quote(req.Location, req.Duration, req.Date, req.Time)
	breakdown := q.Breakdown()
	if breakdown == nil {
		breakdown = []string{}
	}
	c.JSON(http.StatusOK, QuoteResponse{Success: true, Quote: q, Breakdown: breakdown})
}
