package flow

import (
	"context"
	"time"

	"bloodlink-backend/internal/models"
	"bloodlink-backend/pkg/client"
)

// ButtonState is the primary action on the detail view, derived entirely
// from the request's lifecycle status.
type ButtonState struct {
	Label   string
	Enabled bool
}

func ConfirmButton(status string) ButtonState {
	switch status {
	case models.StatusPending:
		return ButtonState{Label: "Confirm Donation", Enabled: true}
	case models.StatusInProgress:
		return ButtonState{Label: "Donation in Progress", Enabled: false}
	case models.StatusDone:
		return ButtonState{Label: "Donation Completed", Enabled: false}
	case models.StatusCanceled:
		return ButtonState{Label: "Request Canceled", Enabled: false}
	}
	return ButtonState{Label: "Confirm Donation", Enabled: false}
}

// ConfirmOutcome classifies the result of the two-step confirm write.
type ConfirmOutcome int

const (
	// ConfirmNotAllowed: the request is not pending; nothing was sent.
	ConfirmNotAllowed ConfirmOutcome = iota
	// ConfirmNoChange: the status patch matched nothing (already taken).
	ConfirmNoChange
	// ConfirmCompleted: status moved to inprogress and the donor was recorded.
	ConfirmCompleted
	// ConfirmDonorUnsaved: status moved to inprogress but the donor record
	// was not saved. The status change is not rolled back; surface this as
	// a warning, distinct from both success and error.
	ConfirmDonorUnsaved
)

// ConfirmAPI is the slice of the remote access layer the confirm flow uses.
type ConfirmAPI interface {
	PatchDonationStatus(ctx context.Context, id, status string) (client.UpdateResult, error)
	AddDonor(ctx context.Context, d models.Donor) (client.InsertResult, error)
}

// ConfirmDonation performs the two sequential writes behind the confirm
// action: (a) patch the request to inprogress, then (b) record the donor
// commitment, only if (a) changed something. On success the request's
// local status is updated in place so the caller re-renders without a
// refetch.
func ConfirmDonation(ctx context.Context, api ConfirmAPI, req *models.DonationRequest, donorName, donorEmail string) (ConfirmOutcome, error) {
	if !ConfirmButton(req.DonationStatus).Enabled {
		return ConfirmNotAllowed, nil
	}

	patched, err := api.PatchDonationStatus(ctx, req.ID.Hex(), models.StatusInProgress)
	if err != nil {
		return ConfirmNoChange, err
	}
	if !patched.Applied() {
		return ConfirmNoChange, nil
	}
	req.DonationStatus = models.StatusInProgress

	inserted, err := api.AddDonor(ctx, models.Donor{
		DonorName:  donorName,
		DonorEmail: donorEmail,
		DonationID: req.ID.Hex(),
		CreatedAt:  time.Now(),
	})
	if err != nil || !inserted.Applied() {
		return ConfirmDonorUnsaved, nil
	}
	return ConfirmCompleted, nil
}
