package Models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DateLayout is the calendar-date format the portal writes into
// Booking.Date. Availability only ever compares dates as strings.
const DateLayout = "2006-01-02"

var (
	ErrNotFound         = errors.New("document not found")
	ErrDuplicateBooking = errors.New("booking already exists for this treatment, patient and date")
)

// Store owns the database connection and hands out one store per
// collection. It is created once in main and injected downward; nothing
// in this package keeps a package-level connection.
type Store struct {
	client *mongo.Client

	AppointmentTypes AppointmentTypeStore
	Bookings         BookingStore
	Users            UserStore
	Doctors          DoctorStore
	Payments         PaymentStore
}

func Connect(ctx context.Context, uri string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info().Msg("connected to the database")

	db := client.Database("doctors-portal")
	return &Store{
		client:           client,
		AppointmentTypes: &appointmentTypeMongo{col: db.Collection("appointment_types")},
		Bookings:         &bookingMongo{col: db.Collection("bookings")},
		Users:            &userMongo{col: db.Collection("users")},
		Doctors:          &doctorMongo{col: db.Collection("doctors")},
		Payments:         &paymentMongo{col: db.Collection("payments")},
	}, nil
}

// EnsureIndexes builds the unique index backing the one-booking-per-
// (treatment, patient, date) invariant, so two racing requests cannot
// both insert after both passing the existence check.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	bookings := s.Bookings.(*bookingMongo)
	_, err := bookings.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "patientEmail", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_treatment_patient_date"),
	})
	if err != nil {
		return fmt.Errorf("create booking index: %w", err)
	}

	users := s.Users.(*userMongo)
	_, err = users.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("create user index: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
