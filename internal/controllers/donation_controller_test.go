package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"bloodlink-backend/internal/models"
)

func validRequestBody() map[string]any {
	return map[string]any{
		"recipientName":     "Karim",
		"recipientDistrict": "Dhaka",
		"recipientUpazila":  "Savar",
		"hospitalName":      "Dhaka Medical College Hospital",
		"fullAddress":       "Zahir Raihan Rd, Dhaka",
		"bloodGroup":        "B+",
		"donationDate":      "2026-09-15",
		"donationTime":      "10:30",
		"requestMessage":    "Urgent surgery",
	}
}

func (env *testEnv) seedRequest(t *testing.T, requesterEmail, status string) string {
	t.Helper()
	id, err := env.donations.Insert(context.Background(), models.DonationRequest{
		RequesterName:     "Owner",
		RequesterEmail:    requesterEmail,
		RecipientName:     "Karim",
		RecipientDistrict: "Dhaka",
		RecipientUpazila:  "Savar",
		HospitalName:      "DMCH",
		FullAddress:       "Dhaka",
		BloodGroup:        "B+",
		DonationDate:      "2026-09-15",
		DonationTime:      "10:30",
		RequestMessage:    "m",
		DonationStatus:    status,
	})
	if err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return id
}

func TestCreateDonationRequestStartsPending(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)

	body := validRequestBody()
	body["donationStatus"] = models.StatusDone
	body["requesterEmail"] = "spoofed@x.com"
	resp := doJSON(t, env.app, http.MethodPost, "/create-donation-request", token, body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var out struct {
		InsertedID string `json:"insertedId"`
	}
	decodeBody(t, resp, &out)
	if out.InsertedID == "" {
		t.Fatalf("missing insertedId")
	}

	stored, err := env.donations.ByID(context.Background(), out.InsertedID)
	if err != nil || stored == nil {
		t.Fatalf("stored request not found: %v", err)
	}
	if stored.DonationStatus != models.StatusPending {
		t.Fatalf("status %q, want pending", stored.DonationStatus)
	}
	if stored.RequesterEmail != "donor@x.com" {
		t.Fatalf("requester email taken from payload: %q", stored.RequesterEmail)
	}
}

func TestCreateDonationRequestBlockedAccount(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "blocked@x.com", models.RoleDonor, models.AccountBlocked)

	resp := doJSON(t, env.app, http.MethodPost, "/create-donation-request", token, validRequestBody())
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status %d, want 403", resp.StatusCode)
	}
	var out struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &out)
	if out.Error != "account is blocked" {
		t.Fatalf("error %q", out.Error)
	}
	all, _ := env.donations.All(context.Background())
	if len(all) != 0 {
		t.Fatalf("blocked user created a request")
	}
}

func TestCreateDonationRequestMissingField(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)

	body := validRequestBody()
	delete(body, "hospitalName")
	resp := doJSON(t, env.app, http.MethodPost, "/create-donation-request", token, body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

func TestCreateDonationRequestNoToken(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/create-donation-request", "", validRequestBody())
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", resp.StatusCode)
	}
}

func TestPatchStatusLegalTransitions(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)
	id := env.seedRequest(t, "owner@x.com", models.StatusPending)

	var out struct {
		ModifiedCount int64 `json:"modifiedCount"`
	}

	resp := doJSON(t, env.app, http.MethodPatch, "/donation-status", token,
		map[string]string{"id": id, "donationStatus": models.StatusInProgress})
	decodeBody(t, resp, &out)
	if out.ModifiedCount != 1 {
		t.Fatalf("pending->inprogress modified %d", out.ModifiedCount)
	}

	resp = doJSON(t, env.app, http.MethodPatch, "/donation-status", token,
		map[string]string{"id": id, "donationStatus": models.StatusDone})
	decodeBody(t, resp, &out)
	if out.ModifiedCount != 1 {
		t.Fatalf("inprogress->done modified %d", out.ModifiedCount)
	}

	stored, _ := env.donations.ByID(context.Background(), id)
	if stored.DonationStatus != models.StatusDone {
		t.Fatalf("final status %q", stored.DonationStatus)
	}
}

func TestPatchStatusIllegalTransitionIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)
	id := env.seedRequest(t, "owner@x.com", models.StatusPending)

	// done requires inprogress; the request is still pending.
	resp := doJSON(t, env.app, http.MethodPatch, "/donation-status", token,
		map[string]string{"id": id, "donationStatus": models.StatusDone})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var out struct {
		ModifiedCount int64 `json:"modifiedCount"`
	}
	decodeBody(t, resp, &out)
	if out.ModifiedCount != 0 {
		t.Fatalf("illegal transition modified %d", out.ModifiedCount)
	}
	stored, _ := env.donations.ByID(context.Background(), id)
	if stored.DonationStatus != models.StatusPending {
		t.Fatalf("record mutated by illegal transition: %q", stored.DonationStatus)
	}
}

func TestPatchStatusPendingIsNotATarget(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)
	id := env.seedRequest(t, "owner@x.com", models.StatusInProgress)

	resp := doJSON(t, env.app, http.MethodPatch, "/donation-status", token,
		map[string]string{"id": id, "donationStatus": models.StatusPending})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

func TestUpdateRequestPreservesOwnerAndStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "owner@x.com", models.RoleDonor, models.AccountActive)
	id := env.seedRequest(t, "owner@x.com", models.StatusInProgress)

	body := validRequestBody()
	body["recipientName"] = "Renamed"
	body["requesterEmail"] = "hijack@x.com"
	body["donationStatus"] = models.StatusPending
	resp := doJSON(t, env.app, http.MethodPut, "/update-donation-request/"+id, token, body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var out struct {
		ModifiedCount int64 `json:"modifiedCount"`
	}
	decodeBody(t, resp, &out)
	if out.ModifiedCount != 1 {
		t.Fatalf("modified %d", out.ModifiedCount)
	}

	stored, _ := env.donations.ByID(context.Background(), id)
	if stored.RecipientName != "Renamed" {
		t.Fatalf("edit not applied")
	}
	if stored.RequesterEmail != "owner@x.com" || stored.DonationStatus != models.StatusInProgress {
		t.Fatalf("protected fields overwritten: %+v", stored)
	}
}

func TestUpdateRequestForbiddenForStranger(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "owner@x.com", models.RoleDonor, models.AccountActive)
	stranger := env.addUser(t, "stranger@x.com", models.RoleDonor, models.AccountActive)
	id := env.seedRequest(t, "owner@x.com", models.StatusPending)

	resp := doJSON(t, env.app, http.MethodPut, "/update-donation-request/"+id, stranger, validRequestBody())
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status %d, want 403", resp.StatusCode)
	}
}

func TestDeleteRequestOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	stranger := env.addUser(t, "stranger@x.com", models.RoleDonor, models.AccountActive)
	id := env.seedRequest(t, "owner@x.com", models.StatusPending)

	resp := doJSON(t, env.app, http.MethodDelete, "/delete-request/"+id, stranger, nil)
	var out struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	decodeBody(t, resp, &out)
	if out.DeletedCount != 0 {
		t.Fatalf("stranger deleted someone else's request")
	}
}

func TestDeleteRequestAdminUnrestricted(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "admin@x.com", models.RoleAdmin, models.AccountActive)
	id := env.seedRequest(t, "owner@x.com", models.StatusPending)

	resp := doJSON(t, env.app, http.MethodDelete, "/delete-request/"+id, admin, nil)
	var out struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	decodeBody(t, resp, &out)
	if out.DeletedCount != 1 {
		t.Fatalf("admin delete reported %d", out.DeletedCount)
	}
}

func TestMyDonationRequestsScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "mine@x.com", models.RoleDonor, models.AccountActive)
	env.seedRequest(t, "mine@x.com", models.StatusPending)
	env.seedRequest(t, "other@x.com", models.StatusPending)

	resp := doJSON(t, env.app, http.MethodGet, "/my-donation-request", token, nil)
	var reqs []models.DonationRequest
	decodeBody(t, resp, &reqs)
	if len(reqs) != 1 || reqs[0].RequesterEmail != "mine@x.com" {
		t.Fatalf("got %d requests: %+v", len(reqs), reqs)
	}
}

func TestAllDonationRequestsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	donor := env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)
	admin := env.addUser(t, "admin@x.com", models.RoleAdmin, models.AccountActive)
	env.seedRequest(t, "owner@x.com", models.StatusPending)

	resp := doJSON(t, env.app, http.MethodGet, "/all-donation-requests", donor, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("donor got %d, want 403", resp.StatusCode)
	}

	resp = doJSON(t, env.app, http.MethodGet, "/all-donation-requests", admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin got %d", resp.StatusCode)
	}
	var reqs []models.DonationRequest
	decodeBody(t, resp, &reqs)
	if len(reqs) != 1 {
		t.Fatalf("got %d requests", len(reqs))
	}
}

func TestPublicFeedNeedsNoToken(t *testing.T) {
	env := newTestEnv(t)
	env.seedRequest(t, "owner@x.com", models.StatusPending)

	resp := doJSON(t, env.app, http.MethodGet, "/all-donation-requests-public", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var reqs []models.DonationRequest
	decodeBody(t, resp, &reqs)
	if len(reqs) != 1 {
		t.Fatalf("got %d requests", len(reqs))
	}
}

func TestDetailsServedOnBothPaths(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)
	id := env.seedRequest(t, "owner@x.com", models.StatusPending)

	for _, path := range []string{"/details/" + id, "/get-donation-request/" + id} {
		resp := doJSON(t, env.app, http.MethodGet, path, token, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: status %d", path, resp.StatusCode)
		}
		var req models.DonationRequest
		decodeBody(t, resp, &req)
		if req.ID.Hex() != id {
			t.Fatalf("%s: wrong request %s", path, req.ID.Hex())
		}
	}
}

func TestDetailsInvalidID(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)

	resp := doJSON(t, env.app, http.MethodGet, "/details/not-a-hex-id", token, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}
