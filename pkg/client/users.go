package client

import (
	"context"
	"net/http"

	"bloodlink-backend/internal/models"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/login", nil, models.LoginRequest{Email: email, Password: password}, &out)
	return out.Token, err
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (InsertResult, error) {
	var res InsertResult
	err := c.do(ctx, http.MethodPost, "/add-user", nil, req, &res)
	return res, err
}

// Users lists every account (admin only).
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	var users []models.User
	err := c.do(ctx, http.MethodGet, "/get-users", nil, nil, &users)
	return users, err
}

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/get-user", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UserRole returns the caller's role as a derived, read-only value.
func (c *Client) UserRole(ctx context.Context) (string, error) {
	if err := c.requireSession(); err != nil {
		return "", err
	}
	var out struct {
		Role string `json:"role"`
	}
	err := c.do(ctx, http.MethodGet, "/get-user-role", nil, nil, &out)
	return out.Role, err
}

// UserStatus returns the caller's account status (active or blocked).
func (c *Client) UserStatus(ctx context.Context) (string, error) {
	if err := c.requireSession(); err != nil {
		return "", err
	}
	var out struct {
		Status string `json:"status"`
	}
	err := c.do(ctx, http.MethodGet, "/get-user-status", nil, nil, &out)
	return out.Status, err
}

type rolePatch struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Client) UpdateUserRole(ctx context.Context, email, role string) (UpdateResult, error) {
	var res UpdateResult
	if err := c.requireSession(); err != nil {
		return res, err
	}
	err := c.do(ctx, http.MethodPatch, "/update-role", nil, rolePatch{Email: email, Role: role}, &res)
	return res, err
}

type accountStatusPatch struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

func (c *Client) UpdateUserStatus(ctx context.Context, email, status string) (UpdateResult, error) {
	var res UpdateResult
	if err := c.requireSession(); err != nil {
		return res, err
	}
	err := c.do(ctx, http.MethodPatch, "/update-status", nil, accountStatusPatch{Email: email, Status: status}, &res)
	return res, err
}
