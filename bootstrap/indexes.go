package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the write paths rely on:
// one recorded donor per donation request, and unique user emails.
func EnsureIndexes(db *mongo.Database) error {
	_, err := db.Collection("donors").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "donationId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_donation_donor"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("users").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("donation_requests").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "requesterEmail", Value: 1}},
			Options: options.Index().SetName("idx_requester_email"),
		},
	)
	return err
}
