package Models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name" binding:"required"`
	Email     string             `bson:"email" json:"email" binding:"required"`
	Specialty string             `bson:"specialty" json:"specialty"`
	Image     string             `bson:"img,omitempty" json:"img,omitempty"`
}

type DoctorStore interface {
	All(ctx context.Context) ([]Doctor, error)
	Insert(ctx context.Context, d Doctor) (string, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type doctorMongo struct {
	col *mongo.Collection
}

func (s *doctorMongo) All(ctx context.Context) ([]Doctor, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *doctorMongo) Insert(ctx context.Context, d Doctor) (string, error) {
	result, err := s.col.InsertOne(ctx, d)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *doctorMongo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := s.col.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
