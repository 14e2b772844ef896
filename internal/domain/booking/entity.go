package booking

// AppointmentOption is one catalog entry with the slots still open on the
// requested date. A fully booked treatment keeps its row with an empty
// slot list rather than disappearing.
type AppointmentOption struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Slots []string `json:"slots"`
}

type CreateInput struct {
	Treatment       string
	AppointmentDate string
	Slot            string
	Email           string
	PatientName     string
	Phone           string
}

// PaymentConfirmation is what the payment provider reports back once a
// charge settles.
type PaymentConfirmation struct {
	BookingID     string
	TransactionID string
	Price         float64
}

// PaymentIntent is the authorization handle handed to the client so it can
// complete the charge against the gateway.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
}
