package Controllers

import (
	"DoctorsPortal/Models"
)

// ConfirmationSender is the slice of the mailer the booking flow needs.
type ConfirmationSender interface {
	SendBookingConfirmation(b Models.Booking) error
}

// API bundles the per-collection stores and the mailer behind the
// request handlers. Tests construct it over the memory stores.
type API struct {
	AppointmentTypes Models.AppointmentTypeStore
	Bookings         Models.BookingStore
	Users            Models.UserStore
	Doctors          Models.DoctorStore
	Payments         Models.PaymentStore
	Mail             ConfirmationSender

	// RequireIdentity makes POST /bookings demand a token whose email
	// matches the supplied patientEmail. Off by default: the portal
	// historically allows booking without logging in.
	RequireIdentity bool
}

func NewAPI(store *Models.Store, mail ConfirmationSender, requireIdentity bool) *API {
	return &API{
		AppointmentTypes: store.AppointmentTypes,
		Bookings:         store.Bookings,
		Users:            store.Users,
		Doctors:          store.Doctors,
		Payments:         store.Payments,
		Mail:             mail,
		RequireIdentity:  requireIdentity,
	}
}
