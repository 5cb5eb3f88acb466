package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"bloodlink-backend/internal/models"
)

type MongoUserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: db.Collection("users")}
}

func (s *MongoUserStore) Insert(ctx context.Context, u models.User) (string, error) {
	u.ID = bson.NewObjectID()
	u.Email = strings.ToLower(u.Email)
	_, err := s.col.InsertOne(ctx, u)
	if err == nil {
		return u.ID.Hex(), nil
	}
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return "", ErrDuplicate
	}
	return "", err
}

func (s *MongoUserStore) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *MongoUserStore) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"email": strings.ToLower(email)},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *MongoUserStore) UpdateStatus(ctx context.Context, email, status string) (int64, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"email": strings.ToLower(email)},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
