package Models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Booking reserves one slot of one treatment on one date for a patient.
// At most one booking may exist per (treatment, patientEmail, date);
// the store enforces that with a unique index.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment     string             `bson:"treatment" json:"treatment" binding:"required"`
	PatientName   string             `bson:"patientName" json:"patientName"`
	PatientEmail  string             `bson:"patientEmail" json:"patientEmail" binding:"required"`
	Date          string             `bson:"date" json:"date" binding:"required"`
	Slot          string             `bson:"slot" json:"slot" binding:"required"`
	Fee           float64            `bson:"fee" json:"fee"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

type BookingStore interface {
	All(ctx context.Context) ([]Booking, error)
	ByDate(ctx context.Context, date string) ([]Booking, error)
	ByEmail(ctx context.Context, email string) ([]Booking, error)
	ByID(ctx context.Context, id string) (*Booking, error)
	// ByKey looks up the uniqueness triple; ErrNotFound means free.
	ByKey(ctx context.Context, treatment, patientEmail, date string) (*Booking, error)
	// Insert returns ErrDuplicateBooking when the unique index rejects
	// the triple.
	Insert(ctx context.Context, b Booking) (string, error)
	MarkPaid(ctx context.Context, id, transactionID string) (int64, error)
}

type bookingMongo struct {
	col *mongo.Collection
}

func (s *bookingMongo) All(ctx context.Context) ([]Booking, error) {
	return s.find(ctx, bson.M{})
}

func (s *bookingMongo) ByDate(ctx context.Context, date string) ([]Booking, error) {
	return s.find(ctx, bson.M{"date": date})
}

func (s *bookingMongo) ByEmail(ctx context.Context, email string) ([]Booking, error) {
	return s.find(ctx, bson.M{"patientEmail": email})
}

func (s *bookingMongo) find(ctx context.Context, filter bson.M) ([]Booking, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *bookingMongo) ByID(ctx context.Context, id string) (*Booking, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var booking Booking
	err = s.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *bookingMongo) ByKey(ctx context.Context, treatment, patientEmail, date string) (*Booking, error) {
	var booking Booking
	err := s.col.FindOne(ctx, bson.M{
		"treatment":    treatment,
		"patientEmail": patientEmail,
		"date":         date,
	}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *bookingMongo) Insert(ctx context.Context, b Booking) (string, error) {
	result, err := s.col.InsertOne(ctx, b)
	if mongo.IsDuplicateKeyError(err) {
		return "", ErrDuplicateBooking
	}
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *bookingMongo) MarkPaid(ctx context.Context, id, transactionID string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrNotFound
	}
	result, err := s.col.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
