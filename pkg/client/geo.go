package client

import (
	"context"
	"net/http"

	"bloodlink-backend/internal/models"
)

func (c *Client) Districts(ctx context.Context) ([]models.District, error) {
	var rows []models.District
	err := c.do(ctx, http.MethodGet, "/districts", nil, nil, &rows)
	return rows, err
}

func (c *Client) Upazilas(ctx context.Context) ([]models.Upazila, error) {
	var rows []models.Upazila
	err := c.do(ctx, http.MethodGet, "/upazilas", nil, nil, &rows)
	return rows, err
}
