package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"bloodlink-backend/internal/models"
)

type MongoDonationStore struct {
	col *mongo.Collection
}

func NewDonationStore(db *mongo.Database) *MongoDonationStore {
	return &MongoDonationStore{col: db.Collection("donation_requests")}
}

func (s *MongoDonationStore) Insert(ctx context.Context, req models.DonationRequest) (string, error) {
	req.ID = bson.NewObjectID()
	res, err := s.col.InsertOne(ctx, req)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(bson.ObjectID)
	return oid.Hex(), nil
}

func (s *MongoDonationStore) All(ctx context.Context) ([]models.DonationRequest, error) {
	return s.find(ctx, bson.D{})
}

func (s *MongoDonationStore) ByRequester(ctx context.Context, email string) ([]models.DonationRequest, error) {
	return s.find(ctx, bson.M{"requesterEmail": email})
}

func (s *MongoDonationStore) find(ctx context.Context, filter interface{}) ([]models.DonationRequest, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.DonationRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *MongoDonationStore) ByID(ctx context.Context, id string) (*models.DonationRequest, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var req models.DonationRequest
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (s *MongoDonationStore) Replace(ctx context.Context, id string, req models.DonationRequest) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	update := bson.M{"$set": bson.M{
		"requesterName":     req.RequesterName,
		"requesterEmail":    req.RequesterEmail,
		"recipientName":     req.RecipientName,
		"recipientDistrict": req.RecipientDistrict,
		"recipientUpazila":  req.RecipientUpazila,
		"hospitalName":      req.HospitalName,
		"fullAddress":       req.FullAddress,
		"bloodGroup":        req.BloodGroup,
		"donationDate":      req.DonationDate,
		"donationTime":      req.DonationTime,
		"requestMessage":    req.RequestMessage,
		"donationStatus":    req.DonationStatus,
	}}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *MongoDonationStore) UpdateStatus(ctx context.Context, id, from, to string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid, "donationStatus": from},
		bson.M{"$set": bson.M{"donationStatus": to}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *MongoDonationStore) Delete(ctx context.Context, id, requesterEmail string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	filter := bson.M{"_id": oid}
	if requesterEmail != "" {
		filter["requesterEmail"] = requesterEmail
	}
	res, err := s.col.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
