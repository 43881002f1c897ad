package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"techpark/internal/domain"
	"techpark/internal/pricing"
	"techpark/internal/utils"
)

// BookingPoster sends a booking form. *HTTPClient implements it.
type BookingPoster interface {
	PostBooking(ctx context.Context, form url.Values) (*BookingResponse, error)
}

// Controller drives one booking page. It is not safe for concurrent use and does not guard
// against a second Submit while one is in flight.
type Controller struct {
	poster BookingPoster
	pricer pricing.Pricer

	draft        *Draft
	payment      payment
	state        State
	confirmation *Confirmation
	lastErr      error
}

func NewController(poster BookingPoster, pricer pricing.Pricer) *Controller {
	return &Controller{
		poster:  poster,
		pricer:  pricer,
		draft:   &Draft{},
		payment: newPayment(),
		state:   Browsing,
	}
}

func (c *Controller) State() State { return c.state }

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft { return *c.draft }

func (c *Controller) Quote() pricing.Quote { return c.draft.Quote }

// PaymentMode is the active payment tab.
func (c *Controller) PaymentMode() domain.PaymentMethod { return c.payment.mode }

// Confirmation is set only in the Confirmed state.
func (c *Controller) Confirmation() (Confirmation, bool) {
	if c.confirmation == nil {
		return Confirmation{}, false
	}
	return *c.confirmation, true
}

// LastError is the message the error modal would show, if any.
func (c *Controller) LastError() error { return c.lastErr }

func (c *Controller) SetLocation(v string) {
	c.draft.Location = strings.TrimSpace(v)
	c.edited(true)
}

func (c *Controller) SetDate(v string) {
	c.draft.Date = strings.TrimSpace(v)
	c.edited(true)
}

func (c *Controller) SetTime(v string) {
	c.draft.Time = strings.TrimSpace(v)
	c.edited(true)
}

func (c *Controller) SetDuration(v string) {
	c.draft.Duration = strings.TrimSpace(v)
	c.edited(true)
}

func (c *Controller) SetVehicle(v string) {
	c.draft.Vehicle = strings.TrimSpace(v)
	c.edited(false)
}

func (c *Controller) SetEmail(v string) {
	c.draft.Email = strings.TrimSpace(v)
	c.edited(false)
}

// SelectPaymentMode switches the active tab. Selections made on the other tab are kept but
// ignored until it is active again.
func (c *Controller) SelectPaymentMode(m domain.PaymentMethod) error {
	if !m.Valid() {
		return domain.ValidationError{Field: "payment_method", Msg: MsgUnknownPayment}
	}
	c.payment.mode = m
	return nil
}

func (c *Controller) SelectUPIProvider(p UPIProvider) error {
	if !p.Valid() {
		return domain.ValidationError{Field: "upi_provider", Msg: MsgUnknownUPI}
	}
	c.payment.upi = p
	return nil
}

// FillCard stores the card form. Incomplete details are accepted here and rejected on Submit.
func (c *Controller) FillCard(d CardDetails) {
	c.payment.card = d
}

func (c *Controller) edited(reprice bool) {
	if reprice {
		d := c.draft
		d.Quote = c.pricer.Quote(d.Location, d.Duration, d.Date, d.Time)
	}
	c.state = Next(c.state, EventEdit)
	if c.draft.Complete() {
		c.state = Next(c.state, EventFieldsComplete)
	}
}

// Submit validates locally, then posts the draft once. Local failures return before any
// network call and leave the state unchanged.
func (c *Controller) Submit(ctx context.Context) (Confirmation, error) {
	if c.state == Confirmed {
		return Confirmation{}, c.fail(domain.ValidationError{Msg: "Booking already confirmed; start a new booking"})
	}
	if !c.draft.Complete() {
		return Confirmation{}, c.fail(errFillRequired())
	}
	if q := c.draft.Quote; !q.Ready || !pricing.ValidHours(q.Hours) {
		return Confirmation{}, c.fail(domain.ValidationError{Field: "duration", Msg: MsgInvalidHours})
	}
	if err := c.payment.check(); err != nil {
		return Confirmation{}, c.fail(err)
	}

	c.lastErr = nil
	c.state = Next(c.state, EventSubmit)

	d := *c.draft
	method := c.payment.mode
	resp, err := c.poster.PostBooking(ctx, formValues(d, method))
	if err != nil {
		utils.LogWarn("", "client", "submit", fmt.Sprintf("request failed: %v", err))
		c.state = Next(c.state, EventRejected)
		return Confirmation{}, c.fail(TransportError{Err: err})
	}
	if !resp.Success {
		c.state = Next(c.state, EventRejected)
		return Confirmation{}, c.fail(ServerError{Msg: resp.Error})
	}

	conf := Confirmation{
		BookingID:     resp.BookingID,
		Location:      d.Location,
		LocationName:  d.Quote.LocationName,
		Date:          d.Date,
		Time:          d.Time,
		Hours:         d.Quote.Hours,
		Vehicle:       d.Vehicle,
		Email:         d.Email,
		Amount:        d.Amount(),
		PaymentMethod: method,
	}
	if conf.LocationName == "" {
		conf.LocationName = d.Location
	}
	c.confirmation = &conf
	c.state = Next(c.state, EventSaved)
	utils.LogEvent("", "client", "submit", fmt.Sprintf("booking_id=%d confirmed", conf.BookingID))
	return conf, nil
}

// Reset starts a new booking. The draft and payment selection are replaced in one step.
func (c *Controller) Reset() {
	c.draft = &Draft{}
	c.payment = newPayment()
	c.confirmation = nil
	c.lastErr = nil
	c.state = Next(c.state, EventReset)
}

func (c *Controller) fail(err error) error {
	c.lastErr = err
	return err
}

func formValues(d Draft, method domain.PaymentMethod) url.Values {
	v := url.Values{}
	v.Set("location", d.Location)
	v.Set("date", d.Date)
	v.Set("time", d.Time)
	v.Set("duration", d.Duration)
	v.Set("vehicle", d.Vehicle)
	v.Set("email", d.Email)
	v.Set("amount", strconv.FormatInt(d.Amount(), 10))
	v.Set("payment_method", string(method))
	return v
}
