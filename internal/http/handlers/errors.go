package handlers

import (
	"net/http"

	"techpark/internal/domain"

	"github.com/gin-gonic/gin"
)

// FailureResponse is the error body of the booking endpoints.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, FailureResponse{Success: false, Error: message})
}

// StatusForError maps domain errors to HTTP status codes.
func StatusForError(err error) int {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case domain.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RespondDomainError writes err as {success:false, error}. Validation and storage messages
// are passed through verbatim; anything unclassified is masked.
func RespondDomainError(c *gin.Context, err error) {
	status := StatusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError && !domain.IsStorage(err) {
		msg = "Internal server error"
	}
	respondFailure(c, status, msg)
}
