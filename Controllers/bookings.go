package Controllers

import (
	"errors"
	"fmt"
	"net/http"

	"DoctorsPortal/Middleware"
	"DoctorsPortal/Models"
	"DoctorsPortal/SSE"
	"DoctorsPortal/Utils/Token"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetBookings returns the caller's own bookings. The email query
// parameter must match the token's email claim, so one patient cannot
// read another's bookings.
func (api *API) GetBookings(c *gin.Context) {
	email := c.Query("email")
	decodedEmail := c.GetString(Middleware.DecodedEmail)
	if decodedEmail == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
		return
	}
	if email != decodedEmail {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	bookings, err := api.Bookings.ByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (api *API) GetBookingByID(c *gin.Context) {
	booking, err := api.Bookings.ByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, Models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CreateBooking inserts a booking unless one already exists for the
// same (treatment, patientEmail, date). A duplicate is a user-facing
// "already booked" outcome, not a fault: 200 with success=false and
// the existing record. On success the confirmation email is dispatched
// without being awaited and admin dashboards get an SSE refresh.
func (api *API) CreateBooking(c *gin.Context) {
	var booking Models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if api.RequireIdentity {
		email, err := Token.ExtractTokenEmail(c)
		if errors.Is(err, Token.ErrNoToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		if err != nil || email != booking.PatientEmail {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}
	}

	booking.Paid = false
	booking.TransactionID = ""

	existing, err := api.Bookings.ByKey(c.Request.Context(), booking.Treatment, booking.PatientEmail, booking.Date)
	if err == nil {
		api.alreadyBooked(c, existing)
		return
	}
	if !errors.Is(err, Models.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check existing booking"})
		return
	}

	id, err := api.Bookings.Insert(c.Request.Context(), booking)
	if errors.Is(err, Models.ErrDuplicateBooking) {
		// Lost the race with a concurrent identical request; the unique
		// index kept the invariant, so report the winner's booking.
		existing, lookupErr := api.Bookings.ByKey(c.Request.Context(), booking.Treatment, booking.PatientEmail, booking.Date)
		if lookupErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check existing booking"})
			return
		}
		api.alreadyBooked(c, existing)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert booking"})
		return
	}

	go func(b Models.Booking) {
		if err := api.Mail.SendBookingConfirmation(b); err != nil {
			log.Error().Err(err).Str("email", b.PatientEmail).Msg("booking confirmation email failed")
		}
	}(booking)
	SSE.Broadcaster.Broadcast("bookings")

	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": id})
}

func (api *API) alreadyBooked(c *gin.Context, existing *Models.Booking) {
	c.JSON(http.StatusOK, gin.H{
		"success": false,
		"booking": existing,
		"message": fmt.Sprintf("You already have a booking on %s", existing.Date),
	})
}

// PayBooking records a payment and flags the booking paid. The payment
// is appended unconditionally: there is no idempotency guard and no
// check that the amount matches the treatment fee.
func (api *API) PayBooking(c *gin.Context) {
	var payment Models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment.BookingID = c.Param("id")

	if _, err := api.Payments.Insert(c.Request.Context(), payment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert payment"})
		return
	}

	modified, err := api.Bookings.MarkPaid(c.Request.Context(), payment.BookingID, payment.TransactionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}
