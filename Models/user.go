package Models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const RoleAdmin = "admin"

// User is keyed by email; it is upserted on every login so the profile
// always reflects the latest sign-in. Role is set only through an
// existing admin.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserStore interface {
	All(ctx context.Context) ([]User, error)
	ByEmail(ctx context.Context, email string) (*User, error)
	// Upsert creates or refreshes the user's profile fields by email.
	// It never touches the role field.
	Upsert(ctx context.Context, email string, u User) error
	GrantAdmin(ctx context.Context, email string) (int64, error)
}

type userMongo struct {
	col *mongo.Collection
}

func (s *userMongo) All(ctx context.Context) ([]User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userMongo) ByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userMongo) Upsert(ctx context.Context, email string, u User) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"email": email, "name": u.Name}},
		options.Update().SetUpsert(true))
	return err
}

func (s *userMongo) GrantAdmin(ctx context.Context, email string) (int64, error) {
	result, err := s.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": RoleAdmin}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
