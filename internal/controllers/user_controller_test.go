package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"bloodlink-backend/internal/models"
)

func TestGetUsersAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	donor := env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)
	volunteer := env.addUser(t, "vol@x.com", models.RoleVolunteer, models.AccountActive)
	admin := env.addUser(t, "admin@x.com", models.RoleAdmin, models.AccountActive)

	for name, token := range map[string]string{"donor": donor, "volunteer": volunteer} {
		resp := doJSON(t, env.app, http.MethodGet, "/get-users", token, nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("%s got %d, want 403", name, resp.StatusCode)
		}
	}

	resp := doJSON(t, env.app, http.MethodGet, "/get-users", admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin got %d", resp.StatusCode)
	}
	var users []models.User
	decodeBody(t, resp, &users)
	if len(users) != 3 {
		t.Fatalf("got %d users", len(users))
	}
	for _, u := range users {
		if u.PasswordHash != "" {
			t.Fatalf("password hash leaked for %s", u.Email)
		}
	}
}

func TestGetUserRole(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "vol@x.com", models.RoleVolunteer, models.AccountActive)

	resp := doJSON(t, env.app, http.MethodGet, "/get-user-role", token, nil)
	var out struct {
		Role string `json:"role"`
	}
	decodeBody(t, resp, &out)
	if out.Role != models.RoleVolunteer {
		t.Fatalf("role %q", out.Role)
	}
}

func TestGetUserStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "blocked@x.com", models.RoleDonor, models.AccountBlocked)

	resp := doJSON(t, env.app, http.MethodGet, "/get-user-status", token, nil)
	var out struct {
		Status string `json:"status"`
	}
	decodeBody(t, resp, &out)
	if out.Status != models.AccountBlocked {
		t.Fatalf("status %q", out.Status)
	}
}

func TestUpdateRole(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "admin@x.com", models.RoleAdmin, models.AccountActive)
	env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)

	resp := doJSON(t, env.app, http.MethodPatch, "/update-role", admin,
		map[string]string{"email": "donor@x.com", "role": models.RoleVolunteer})
	var out struct {
		ModifiedCount int64 `json:"modifiedCount"`
	}
	decodeBody(t, resp, &out)
	if out.ModifiedCount != 1 {
		t.Fatalf("modified %d", out.ModifiedCount)
	}

	u, _ := env.users.ByEmail(context.Background(), "donor@x.com")
	if u.Role != models.RoleVolunteer {
		t.Fatalf("role %q", u.Role)
	}
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "admin@x.com", models.RoleAdmin, models.AccountActive)

	resp := doJSON(t, env.app, http.MethodPatch, "/update-role", admin,
		map[string]string{"email": "donor@x.com", "role": "superuser"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

func TestUpdateRoleNotAdmin(t *testing.T) {
	env := newTestEnv(t)
	donor := env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)

	resp := doJSON(t, env.app, http.MethodPatch, "/update-role", donor,
		map[string]string{"email": "donor@x.com", "role": models.RoleAdmin})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status %d, want 403", resp.StatusCode)
	}
}

func TestUpdateStatusBlocksUser(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "admin@x.com", models.RoleAdmin, models.AccountActive)
	env.addUser(t, "donor@x.com", models.RoleDonor, models.AccountActive)

	resp := doJSON(t, env.app, http.MethodPatch, "/update-status", admin,
		map[string]string{"email": "donor@x.com", "status": models.AccountBlocked})
	var out struct {
		ModifiedCount int64 `json:"modifiedCount"`
	}
	decodeBody(t, resp, &out)
	if out.ModifiedCount != 1 {
		t.Fatalf("modified %d", out.ModifiedCount)
	}

	u, _ := env.users.ByEmail(context.Background(), "donor@x.com")
	if u.Status != models.AccountBlocked {
		t.Fatalf("status %q", u.Status)
	}
}

func TestUpdateStatusUnknownEmailIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "admin@x.com", models.RoleAdmin, models.AccountActive)

	resp := doJSON(t, env.app, http.MethodPatch, "/update-status", admin,
		map[string]string{"email": "nobody@x.com", "status": models.AccountBlocked})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var out struct {
		ModifiedCount int64 `json:"modifiedCount"`
	}
	decodeBody(t, resp, &out)
	if out.ModifiedCount != 0 {
		t.Fatalf("modified %d for unknown email", out.ModifiedCount)
	}
}
