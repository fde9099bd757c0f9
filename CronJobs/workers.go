package CronJobs

import (
	"context"
	"time"

	"DoctorsPortal/Models"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
)

// ReminderSender is the slice of the mailer the sweep needs.
type ReminderSender interface {
	SendBookingReminder(b Models.Booking) error
}

// BookingReminder sends reminder emails for tomorrow's bookings.
type BookingReminder struct {
	Bookings Models.BookingStore
	Mail     ReminderSender
}

func NewBookingReminder(bookings Models.BookingStore, mail ReminderSender) *BookingReminder {
	return &BookingReminder{
		Bookings: bookings,
		Mail:     mail,
	}
}

// StartReminderCron runs the reminder sweep every morning.
func (br *BookingReminder) StartReminderCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Day().At("09:00").Do(func() {
		log.Info().Msg("running booking reminder sweep")
		if err := br.SendBookingReminders(context.Background()); err != nil {
			log.Error().Err(err).Msg("booking reminder sweep failed")
		}
	})

	scheduler.StartAsync()
	log.Info().Msg("booking reminder cron job started")

	return scheduler
}

func (br *BookingReminder) SendBookingReminders(ctx context.Context) error {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(Models.DateLayout)
	return br.RemindFor(ctx, tomorrow)
}

// RemindFor emails every booking on the given date. Send failures are
// logged per booking and do not stop the sweep.
func (br *BookingReminder) RemindFor(ctx context.Context, date string) error {
	bookings, err := br.Bookings.ByDate(ctx, date)
	if err != nil {
		return err
	}

	for _, booking := range bookings {
		if booking.PatientEmail == "" {
			continue
		}
		if err := br.Mail.SendBookingReminder(booking); err != nil {
			log.Error().Err(err).
				Str("email", booking.PatientEmail).
				Str("treatment", booking.Treatment).
				Msg("reminder email failed")
		}
	}
	return nil
}
