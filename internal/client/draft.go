package client

import (
	"strings"

	"techpark/internal/domain"
	"techpark/internal/pricing"
)

// Draft is the in-progress booking. Amount always comes from the quote.
type Draft struct {
	Location string
	Date     string
	Time     string
	Duration string
	Vehicle  string
	Email    string

	Quote pricing.Quote
}

// Amount is rate × hours for the current location and duration.
func (d *Draft) Amount() int64 {
	return d.Quote.Amount
}

// Complete reports whether the six user-entered fields are filled.
func (d *Draft) Complete() bool {
	for _, v := range []string{d.Location, d.Date, d.Time, d.Duration, d.Vehicle, d.Email} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

type UPIProvider string

const (
	UPIGooglePay UPIProvider = "gpay"
	UPIPhonePe   UPIProvider = "phonepe"
	UPIPaytm     UPIProvider = "paytm"
	UPIOther     UPIProvider = "other"
)

func (p UPIProvider) Valid() bool {
	switch p {
	case UPIGooglePay, UPIPhonePe, UPIPaytm, UPIOther:
		return true
	}
	return false
}

// CardDetails is collected only to gate submission; it is never sent to the server.
type CardDetails struct {
	Type   string // visa, mastercard, rupay ...
	Name   string
	Number string
	Expiry string
	CVV    string
}

func (c CardDetails) Complete() bool {
	for _, v := range []string{c.Type, c.Name, c.Number, c.Expiry, c.CVV} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// payment holds both tabs; only the active mode is consulted on submit.
type payment struct {
	mode domain.PaymentMethod
	upi  UPIProvider
	card CardDetails
}

func newPayment() payment {
	return payment{mode: domain.PaymentUPI}
}

func (p payment) check() error {
	switch p.mode {
	case domain.PaymentUPI:
		if p.upi == "" {
			return domain.PaymentSelectionError{Msg: MsgSelectUPI}
		}
	case domain.PaymentCard:
		if !p.card.Complete() {
			return domain.PaymentSelectionError{Msg: MsgFillCard}
		}
	default:
		return domain.PaymentSelectionError{Msg: MsgUnknownPayment}
	}
	return nil
}
