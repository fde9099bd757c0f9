package CronJobs

import (
	"context"
	"errors"
	"testing"

	"DoctorsPortal/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reminderSpy struct {
	sent []Models.Booking
	deny bool
}

func (s *reminderSpy) SendBookingReminder(b Models.Booking) error {
	if s.deny {
		return errors.New("smtp down")
	}
	s.sent = append(s.sent, b)
	return nil
}

func TestRemindFor(t *testing.T) {
	ctx := context.Background()
	bookings := &Models.MemoryBookings{}

	seed := []Models.Booking{
		{Treatment: "Cleaning", PatientName: "Alice", PatientEmail: "alice@example.com", Date: "2024-01-02", Slot: "9am"},
		{Treatment: "Whitening", PatientName: "Bob", PatientEmail: "bob@example.com", Date: "2024-01-02", Slot: "11am"},
		{Treatment: "Cleaning", PatientName: "Carol", PatientEmail: "carol@example.com", Date: "2024-01-05", Slot: "9am"},
	}
	for _, b := range seed {
		_, err := bookings.Insert(ctx, b)
		require.NoError(t, err)
	}

	t.Run("OnlyMatchingDateReminded", func(t *testing.T) {
		spy := &reminderSpy{}
		reminder := NewBookingReminder(bookings, spy)

		require.NoError(t, reminder.RemindFor(ctx, "2024-01-02"))
		require.Len(t, spy.sent, 2)
		assert.Equal(t, "alice@example.com", spy.sent[0].PatientEmail)
		assert.Equal(t, "bob@example.com", spy.sent[1].PatientEmail)
	})

	t.Run("EmptyDateNoSends", func(t *testing.T) {
		spy := &reminderSpy{}
		reminder := NewBookingReminder(bookings, spy)

		require.NoError(t, reminder.RemindFor(ctx, "1999-12-31"))
		assert.Empty(t, spy.sent)
	})

	t.Run("SendFailureDoesNotAbortSweep", func(t *testing.T) {
		spy := &reminderSpy{deny: true}
		reminder := NewBookingReminder(bookings, spy)
		assert.NoError(t, reminder.RemindFor(ctx, "2024-01-02"))
	})

	t.Run("SkipsBookingsWithoutEmail", func(t *testing.T) {
		anon := &Models.MemoryBookings{}
		_, err := anon.Insert(ctx, Models.Booking{Treatment: "Cleaning", Date: "2024-01-02", Slot: "9am"})
		require.NoError(t, err)

		spy := &reminderSpy{}
		reminder := NewBookingReminder(anon, spy)
		require.NoError(t, reminder.RemindFor(ctx, "2024-01-02"))
		assert.Empty(t, spy.sent)
	})
}
