package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"bloodlink-backend/internal/models"
)

type MongoBlogStore struct {
	col *mongo.Collection
}

func NewBlogStore(db *mongo.Database) *MongoBlogStore {
	return &MongoBlogStore{col: db.Collection("blogs")}
}

func (s *MongoBlogStore) Insert(ctx context.Context, b models.Blog) (string, error) {
	b.ID = bson.NewObjectID()
	res, err := s.col.InsertOne(ctx, b)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(bson.ObjectID)
	return oid.Hex(), nil
}

func (s *MongoBlogStore) All(ctx context.Context) ([]models.Blog, error) {
	return s.find(ctx, bson.D{})
}

func (s *MongoBlogStore) Published(ctx context.Context) ([]models.Blog, error) {
	return s.find(ctx, bson.M{"status": models.BlogPublished})
}

func (s *MongoBlogStore) find(ctx context.Context, filter interface{}) ([]models.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *MongoBlogStore) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *MongoBlogStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
