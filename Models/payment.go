package Models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Payment is append-only provider metadata for a paid booking, linked
// back to the booking by TransactionID only.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookingID     string             `bson:"bookingId" json:"bookingId"`
	TransactionID string             `bson:"transactionId" json:"transactionId" binding:"required"`
	Amount        float64            `bson:"amount" json:"amount"`
	PatientEmail  string             `bson:"patientEmail" json:"patientEmail"`
}

type PaymentStore interface {
	All(ctx context.Context) ([]Payment, error)
	Insert(ctx context.Context, p Payment) (string, error)
}

type paymentMongo struct {
	col *mongo.Collection
}

func (s *paymentMongo) All(ctx context.Context) ([]Payment, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *paymentMongo) Insert(ctx context.Context, p Payment) (string, error) {
	result, err := s.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
