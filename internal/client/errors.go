package client

import "techpark/internal/domain"

const (
	MsgFillRequired   = "Please fill in all required fields before completing your booking"
	MsgInvalidHours   = "Please enter a duration between 1 and 720 hours."
	MsgSelectUPI      = "Please select a UPI payment method first."
	MsgFillCard       = "Please fill in your card details first."
	MsgSaveFailedPfx  = "Failed to save booking: "
	MsgServerFailure  = "Server error while saving booking! Please try again."
	MsgUnknownUPI     = "Unknown UPI provider"
	MsgUnknownPayment = "Unknown payment method"
)

// TransportError is a failed request or an unreadable response. The user may retry.
type TransportError struct {
	Err error
}

func (e TransportError) Error() string { return MsgServerFailure }

func (e TransportError) Unwrap() error { return e.Err }

// ServerError is a response with success=false; Msg is the server's error verbatim.
type ServerError struct {
	Msg string
}

func (e ServerError) Error() string { return MsgSaveFailedPfx + e.Msg }

func errFillRequired() error {
	return domain.ValidationError{Msg: MsgFillRequired}
}
