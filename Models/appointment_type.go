package Models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AppointmentType is a bookable treatment with a fee and its full daily
// slot catalog. Name doubles as the booking key.
type AppointmentType struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name" binding:"required"`
	Fee   float64            `bson:"fee" json:"fee"`
	Slots []string           `bson:"slots" json:"slots"`
}

type AppointmentTypeStore interface {
	All(ctx context.Context) ([]AppointmentType, error)
	Names(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, t AppointmentType) (string, error)
}

type appointmentTypeMongo struct {
	col *mongo.Collection
}

func (s *appointmentTypeMongo) All(ctx context.Context) ([]AppointmentType, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var types []AppointmentType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (s *appointmentTypeMongo) Names(ctx context.Context) ([]string, error) {
	cursor, err := s.col.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"name": 1, "_id": 0}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var t AppointmentType
		if err := cursor.Decode(&t); err != nil {
			return nil, err
		}
		names = append(names, t.Name)
	}
	return names, cursor.Err()
}

func (s *appointmentTypeMongo) Insert(ctx context.Context, t AppointmentType) (string, error) {
	result, err := s.col.InsertOne(ctx, t)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
