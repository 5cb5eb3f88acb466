package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Donor links a donor identity to one in-progress donation request.
// The donations collection carries a unique index on donationId, so a
// request can have at most one recorded commitment.
type Donor struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DonorName  string        `bson:"donorName" json:"donorName"`
	DonorEmail string        `bson:"donorEmail" json:"donorEmail"`
	DonationID string        `bson:"donationId" json:"donationId"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}
