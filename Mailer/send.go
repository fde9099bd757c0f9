package Mailer

import (
	"fmt"

	"DoctorsPortal/Models"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends booking emails through SendGrid. Sends are best-effort:
// callers dispatch them in a goroutine and failures only get logged.
type Mailer struct {
	apiKey     string
	senderAddr string
}

func New(apiKey, senderAddr string) *Mailer {
	if apiKey == "" {
		log.Warn().Msg("SENDGRID_API_KEY not set, emails will be dropped")
	}
	return &Mailer{apiKey: apiKey, senderAddr: senderAddr}
}

func (m *Mailer) SendBookingConfirmation(b Models.Booking) error {
	subject := fmt.Sprintf("Your appointment for %s is confirmed", b.Treatment)
	return m.send(b, subject, ConfirmationBody(b))
}

func (m *Mailer) SendBookingReminder(b Models.Booking) error {
	subject := fmt.Sprintf("Reminder: %s appointment tomorrow", b.Treatment)
	return m.send(b, subject, ReminderBody(b))
}

func (m *Mailer) send(b Models.Booking, subject, body string) error {
	if m.apiKey == "" {
		log.Debug().Str("email", b.PatientEmail).Msg("mailer disabled, dropping email")
		return nil
	}

	from := mail.NewEmail("Doctors Portal", m.senderAddr)
	to := mail.NewEmail(b.PatientName, b.PatientEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	response, err := sendgrid.NewSendClient(m.apiKey).Send(message)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", b.PatientEmail, err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("send email to %s: sendgrid status %d", b.PatientEmail, response.StatusCode)
	}
	return nil
}

func ConfirmationBody(b Models.Booking) string {
	return fmt.Sprintf(
		"Dear %s,\n\nYour appointment for %s on %s at %s is confirmed.\n\nThank you,\nDoctors Portal",
		b.PatientName, b.Treatment, b.Date, b.Slot)
}

func ReminderBody(b Models.Booking) string {
	return fmt.Sprintf(
		"Dear %s,\n\nThis is a reminder for your %s appointment tomorrow (%s) at %s.\n\nThank you,\nDoctors Portal",
		b.PatientName, b.Treatment, b.Date, b.Slot)
}
