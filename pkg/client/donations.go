package client

import (
	"context"
	"net/http"
	"net/url"

	"bloodlink-backend/internal/models"
)

// PublicDonationRequests fetches the unauthenticated feed.
func (c *Client) PublicDonationRequests(ctx context.Context) ([]models.DonationRequest, error) {
	var reqs []models.DonationRequest
	err := c.do(ctx, http.MethodGet, "/all-donation-requests-public", nil, nil, &reqs)
	return reqs, err
}

// AllDonationRequests fetches every request (admin only).
func (c *Client) AllDonationRequests(ctx context.Context) ([]models.DonationRequest, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	var reqs []models.DonationRequest
	err := c.do(ctx, http.MethodGet, "/all-donation-requests", nil, nil, &reqs)
	return reqs, err
}

// MyDonationRequests fetches the caller's own requests.
func (c *Client) MyDonationRequests(ctx context.Context) ([]models.DonationRequest, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	var reqs []models.DonationRequest
	err := c.do(ctx, http.MethodGet, "/my-donation-request", nil, nil, &reqs)
	return reqs, err
}

func (c *Client) CreateDonationRequest(ctx context.Context, req models.DonationRequest) (InsertResult, error) {
	var res InsertResult
	if err := c.requireSession(); err != nil {
		return res, err
	}
	err := c.do(ctx, http.MethodPost, "/create-donation-request", nil, req, &res)
	return res, err
}

func (c *Client) DonationRequest(ctx context.Context, id string) (*models.DonationRequest, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	var req models.DonationRequest
	if err := c.do(ctx, http.MethodGet, "/details/"+id, nil, nil, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateDonationRequest sends the full replacement payload.
func (c *Client) UpdateDonationRequest(ctx context.Context, id string, req models.DonationRequest) (UpdateResult, error) {
	var res UpdateResult
	if err := c.requireSession(); err != nil {
		return res, err
	}
	err := c.do(ctx, http.MethodPut, "/update-donation-request/"+id, nil, req, &res)
	return res, err
}

type statusPatch struct {
	ID             string `json:"id"`
	DonationStatus string `json:"donationStatus"`
}

func (c *Client) PatchDonationStatus(ctx context.Context, id, status string) (UpdateResult, error) {
	var res UpdateResult
	if err := c.requireSession(); err != nil {
		return res, err
	}
	err := c.do(ctx, http.MethodPatch, "/donation-status", nil, statusPatch{ID: id, DonationStatus: status}, &res)
	return res, err
}

func (c *Client) DeleteDonationRequest(ctx context.Context, id string) (DeleteResult, error) {
	var res DeleteResult
	if err := c.requireSession(); err != nil {
		return res, err
	}
	err := c.do(ctx, http.MethodDelete, "/delete-request/"+id, nil, nil, &res)
	return res, err
}

// AddDonor records a donor commitment against an in-progress request.
func (c *Client) AddDonor(ctx context.Context, d models.Donor) (InsertResult, error) {
	var res InsertResult
	err := c.do(ctx, http.MethodPost, "/add-donor", nil, d, &res)
	return res, err
}

// FindDonor returns the committed donor for a request, or nil.
func (c *Client) FindDonor(ctx context.Context, donationID string) (*models.Donor, error) {
	q := url.Values{"donationId": []string{donationID}}
	var donors []models.Donor
	if err := c.do(ctx, http.MethodGet, "/find-donor", q, nil, &donors); err != nil {
		return nil, err
	}
	if len(donors) == 0 {
		return nil, nil
	}
	return &donors[0], nil
}
