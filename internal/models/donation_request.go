package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Donation lifecycle statuses. A request is created in pending, moves to
// inprogress when a donor confirms, and ends in done or canceled.
const (
	StatusPending    = "pending"
	StatusInProgress = "inprogress"
	StatusDone       = "done"
	StatusCanceled   = "canceled"
)

// DonationStatuses lists every lifecycle value in display order.
var DonationStatuses = []string{StatusPending, StatusInProgress, StatusDone, StatusCanceled}

type DonationRequest struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterName     string        `bson:"requesterName" json:"requesterName"`
	RequesterEmail    string        `bson:"requesterEmail" json:"requesterEmail"`
	RecipientName     string        `bson:"recipientName" json:"recipientName"`
	RecipientDistrict string        `bson:"recipientDistrict" json:"recipientDistrict"`
	RecipientUpazila  string        `bson:"recipientUpazila" json:"recipientUpazila"`
	HospitalName      string        `bson:"hospitalName" json:"hospitalName"`
	FullAddress       string        `bson:"fullAddress" json:"fullAddress"`
	BloodGroup        string        `bson:"bloodGroup" json:"bloodGroup"`
	DonationDate      string        `bson:"donationDate" json:"donationDate"`
	DonationTime      string        `bson:"donationTime" json:"donationTime"`
	RequestMessage    string        `bson:"requestMessage" json:"requestMessage"`
	DonationStatus    string        `bson:"donationStatus" json:"donationStatus"`
}

// TransitionFrom returns the only status a request may hold for a move to
// `to` to be legal. Empty means `to` is never a valid transition target
// (pending is creation-only, done/canceled are terminal).
func TransitionFrom(to string) string {
	switch to {
	case StatusInProgress:
		return StatusPending
	case StatusDone, StatusCanceled:
		return StatusInProgress
	}
	return ""
}

func IsDonationStatus(s string) bool {
	for _, v := range DonationStatuses {
		if v == s {
			return true
		}
	}
	return false
}
