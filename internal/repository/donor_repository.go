package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"bloodlink-backend/internal/models"
)

type MongoDonorStore struct {
	col *mongo.Collection
}

func NewDonorStore(db *mongo.Database) *MongoDonorStore {
	return &MongoDonorStore{col: db.Collection("donors")}
}

func (s *MongoDonorStore) Insert(ctx context.Context, d models.Donor) (string, error) {
	d.ID = bson.NewObjectID()
	_, err := s.col.InsertOne(ctx, d)
	if err == nil {
		return d.ID.Hex(), nil
	}
	// The uniq_donation_donor index rejects a second commitment (11000).
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return "", ErrDuplicate
	}
	return "", err
}

func (s *MongoDonorStore) ByDonationID(ctx context.Context, donationID string) (*models.Donor, error) {
	var d models.Donor
	if err := s.col.FindOne(ctx, bson.M{"donationId": donationID}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
