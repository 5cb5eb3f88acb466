package repository

import (
	"context"
	"errors"

	"bloodlink-backend/internal/models"
)

// ErrDuplicate is returned when a unique index rejects an insert.
var ErrDuplicate = errors.New("duplicate key")

// Store interfaces sit between the Fiber handlers and mongo-driver so the
// handlers can be exercised against in-memory fakes. Write methods return
// the raw matched counts; translating a zero count into an outcome is the
// caller's job.

type DonationStore interface {
	Insert(ctx context.Context, req models.DonationRequest) (string, error)
	All(ctx context.Context) ([]models.DonationRequest, error)
	ByRequester(ctx context.Context, email string) ([]models.DonationRequest, error)
	ByID(ctx context.Context, id string) (*models.DonationRequest, error)
	// Replace updates every editable field of the request with the given
	// document, keyed by id. Requester identity and status are whatever the
	// caller put in req; preserving them is handler policy.
	Replace(ctx context.Context, id string, req models.DonationRequest) (int64, error)
	// UpdateStatus moves a request to `to` only while its current status is
	// `from`; an illegal transition matches nothing and reports 0.
	UpdateStatus(ctx context.Context, id, from, to string) (int64, error)
	// Delete removes the request. A non-empty requesterEmail restricts the
	// delete to that owner's documents.
	Delete(ctx context.Context, id, requesterEmail string) (int64, error)
}

type DonorStore interface {
	Insert(ctx context.Context, d models.Donor) (string, error)
	ByDonationID(ctx context.Context, donationID string) (*models.Donor, error)
}

type UserStore interface {
	Insert(ctx context.Context, u models.User) (string, error)
	All(ctx context.Context) ([]models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateRole(ctx context.Context, email, role string) (int64, error)
	UpdateStatus(ctx context.Context, email, status string) (int64, error)
}

type BlogStore interface {
	Insert(ctx context.Context, b models.Blog) (string, error)
	All(ctx context.Context) ([]models.Blog, error)
	Published(ctx context.Context) ([]models.Blog, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type GeoStore interface {
	Districts(ctx context.Context) ([]models.District, error)
	Upazilas(ctx context.Context) ([]models.Upazila, error)
}
