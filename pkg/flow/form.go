package flow

import (
	"context"
	"errors"

	"bloodlink-backend/internal/models"
	"bloodlink-backend/pkg/client"
)

var (
	// ErrIncomplete means at least one required field is empty.
	ErrIncomplete = errors.New("all fields are required")
	// ErrBlocked means the requester's account is blocked.
	ErrBlocked = errors.New("blocked users cannot create donation requests")
	// ErrStatusUnknown means the account status has not loaded yet.
	ErrStatusUnknown = errors.New("account status not loaded")
)

// StatusCheck carries the requester's account status lookup. While Loading
// is true the form must not submit, regardless of Status.
type StatusCheck struct {
	Loading bool
	Status  string
}

// CreateForm holds the user-entered fields of a new donation request. The
// district is tracked by id until submit, when it is resolved to a name.
type CreateForm struct {
	RecipientName  string
	Location       LocationSelection
	HospitalName   string
	FullAddress    string
	BloodGroup     string
	DonationDate   string
	DonationTime   string
	RequestMessage string
}

func (f CreateForm) validate() error {
	fields := []string{
		f.RecipientName,
		f.Location.DistrictID,
		f.Location.Upazila,
		f.HospitalName,
		f.FullAddress,
		f.BloodGroup,
		f.DonationDate,
		f.DonationTime,
		f.RequestMessage,
	}
	for _, v := range fields {
		if v == "" {
			return ErrIncomplete
		}
	}
	if !models.IsBloodGroup(f.BloodGroup) {
		return ErrIncomplete
	}
	return nil
}

// CreateAPI is the slice of the remote access layer the form submit uses.
type CreateAPI interface {
	CreateDonationRequest(ctx context.Context, req models.DonationRequest) (client.InsertResult, error)
}

// SubmitCreateForm validates the form and creates the request. The
// requester's identity comes from the session, never from the form, and
// the status always starts at pending. Nothing is sent while the account
// status is still loading or once the account is blocked.
func SubmitCreateForm(ctx context.Context, api CreateAPI, geo *Geography, requesterName, requesterEmail string, check StatusCheck, form CreateForm) (client.InsertResult, error) {
	var res client.InsertResult
	if check.Loading {
		return res, ErrStatusUnknown
	}
	if check.Status == models.AccountBlocked {
		return res, ErrBlocked
	}
	if err := form.validate(); err != nil {
		return res, err
	}
	return api.CreateDonationRequest(ctx, models.DonationRequest{
		RequesterName:     requesterName,
		RequesterEmail:    requesterEmail,
		RecipientName:     form.RecipientName,
		RecipientDistrict: geo.DistrictName(form.Location.DistrictID),
		RecipientUpazila:  form.Location.Upazila,
		HospitalName:      form.HospitalName,
		FullAddress:       form.FullAddress,
		BloodGroup:        form.BloodGroup,
		DonationDate:      form.DonationDate,
		DonationTime:      form.DonationTime,
		RequestMessage:    form.RequestMessage,
		DonationStatus:    models.StatusPending,
	})
}
