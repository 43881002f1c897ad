package domain

// PaymentStatus mirrors the bookings.payment_status enum.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentSuccess PaymentStatus = "Success"
	PaymentFailed  PaymentStatus = "Failed"
)

// PaymentMethod is the payment mode the user picked before submitting.
type PaymentMethod string

const (
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "Card"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentUPI || m == PaymentCard
}
