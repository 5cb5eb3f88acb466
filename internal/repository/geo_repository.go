package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"bloodlink-backend/internal/models"
)

type MongoGeoStore struct {
	districts *mongo.Collection
	upazilas  *mongo.Collection
}

func NewGeoStore(db *mongo.Database) *MongoGeoStore {
	return &MongoGeoStore{
		districts: db.Collection("districts"),
		upazilas:  db.Collection("upazilas"),
	}
}

func (s *MongoGeoStore) Districts(ctx context.Context) ([]models.District, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.districts.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []models.District{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *MongoGeoStore) Upazilas(ctx context.Context) ([]models.Upazila, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.upazilas.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []models.Upazila{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
