package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"techpark/internal/domain"
	"techpark/internal/http/middleware"
	"techpark/internal/metrics"
	"techpark/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BookingCreatedResponse is the success body of POST /api/bookings.
type BookingCreatedResponse struct {
	Success   bool   `json:"success"`
	BookingID int64  `json:"booking_id"`
	Message   string `json:"message"`
}

// CreateBooking accepts the form-encoded booking and answers {success, booking_id | error}.
func (a API) CreateBooking(c *gin.Context) {
	var form services.BookingForm
	if err := c.ShouldBindWith(&form, bodyBinding(c)); err != nil {
		a.observeIntake(metrics.OutcomeInvalid)
		respondFailure(c, http.StatusBadRequest, "Invalid form data")
		return
	}

	svc := services.BookingService{
		Repo:         a.bookings(),
		Pricer:       a.pricer(),
		StrictAmount: a.StrictAmount,
		RequestID:    middleware.GetRequestID(c),
		Ping:         a.ping(),
	}
	id, err := svc.Submit(c.Request.Context(), form)
	if err != nil {
		a.observeIntake(intakeOutcome(err))
		RespondDomainError(c, err)
		return
	}

	a.observeIntake(metrics.OutcomeCreated)
	c.JSON(http.StatusOK, BookingCreatedResponse{
		Success:   true,
		BookingID: id,
		Message:   services.MsgBookingSaved,
	})
}

// GetBookingReceipt streams the PDF receipt of a stored booking.
func (a API) GetBookingReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondFailure(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	svc := services.ReceiptService{
		Repo:      a.bookings(),
		Catalog:   a.catalog(),
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateReceipt(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// bodyBinding reads fields from the request body only; query parameters never fill the form.
func bodyBinding(c *gin.Context) binding.Binding {
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		return binding.FormMultipart
	}
	return binding.FormPost
}

func intakeOutcome(err error) string {
	var missing domain.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		return metrics.OutcomeMissing
	case domain.IsValidation(err):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeStorageError
	}
}
