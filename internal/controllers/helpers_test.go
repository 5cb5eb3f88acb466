package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"bloodlink-backend/internal/middleware"
	"bloodlink-backend/internal/models"
	"bloodlink-backend/internal/repository"
	"bloodlink-backend/internal/routes"
)

const testSecret = "test-secret"

// In-memory store fakes backing the handler tests. They mirror the count
// semantics of the Mongo repositories: writes that match nothing return 0.

type fakeDonationStore struct {
	mu   sync.Mutex
	rows []models.DonationRequest
}

func (s *fakeDonationStore) Insert(ctx context.Context, req models.DonationRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req.ID = bson.NewObjectID()
	s.rows = append(s.rows, req)
	return req.ID.Hex(), nil
}

func (s *fakeDonationStore) All(ctx context.Context) ([]models.DonationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DonationRequest{}, s.rows...), nil
}

func (s *fakeDonationStore) ByRequester(ctx context.Context, email string) ([]models.DonationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.DonationRequest{}
	for _, r := range s.rows {
		if r.RequesterEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeDonationStore) ByID(ctx context.Context, id string) (*models.DonationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.ID.Hex() == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeDonationStore) Replace(ctx context.Context, id string, req models.DonationRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rows {
		if r.ID.Hex() == id {
			req.ID = r.ID
			s.rows[i] = req
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeDonationStore) UpdateStatus(ctx context.Context, id, from, to string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rows {
		if r.ID.Hex() == id && r.DonationStatus == from {
			s.rows[i].DonationStatus = to
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeDonationStore) Delete(ctx context.Context, id, requesterEmail string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rows {
		if r.ID.Hex() != id {
			continue
		}
		if requesterEmail != "" && r.RequesterEmail != requesterEmail {
			continue
		}
		s.rows = append(s.rows[:i], s.rows[i+1:]...)
		return 1, nil
	}
	return 0, nil
}

type fakeDonorStore struct {
	mu   sync.Mutex
	rows []models.Donor
}

func (s *fakeDonorStore) Insert(ctx context.Context, d models.Donor) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.rows {
		if existing.DonationID == d.DonationID {
			return "", repository.ErrDuplicate
		}
	}
	d.ID = bson.NewObjectID()
	s.rows = append(s.rows, d)
	return d.ID.Hex(), nil
}

func (s *fakeDonorStore) ByDonationID(ctx context.Context, donationID string) (*models.Donor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.rows {
		if d.DonationID == donationID {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeUserStore struct {
	mu   sync.Mutex
	rows []models.User
}

func (s *fakeUserStore) Insert(ctx context.Context, u models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.rows {
		if existing.Email == u.Email {
			return "", repository.ErrDuplicate
		}
	}
	u.ID = bson.NewObjectID()
	s.rows = append(s.rows, u)
	return u.ID.Hex(), nil
}

func (s *fakeUserStore) All(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User{}, s.rows...), nil
}

func (s *fakeUserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(email)
	for _, u := range s.rows {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.rows {
		if u.Email == strings.ToLower(email) {
			s.rows[i].Role = role
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeUserStore) UpdateStatus(ctx context.Context, email, status string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.rows {
		if u.Email == strings.ToLower(email) {
			s.rows[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

type fakeBlogStore struct {
	mu   sync.Mutex
	rows []models.Blog
}

func (s *fakeBlogStore) Insert(ctx context.Context, b models.Blog) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = bson.NewObjectID()
	s.rows = append(s.rows, b)
	return b.ID.Hex(), nil
}

func (s *fakeBlogStore) All(ctx context.Context) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Blog{}, s.rows...), nil
}

func (s *fakeBlogStore) Published(ctx context.Context) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Blog{}
	for _, b := range s.rows {
		if b.Status == models.BlogPublished {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeBlogStore) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.rows {
		if b.ID.Hex() == id {
			s.rows[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeBlogStore) Delete(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.rows {
		if b.ID.Hex() == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeGeoStore struct {
	districts []models.District
	upazilas  []models.Upazila
}

func (s *fakeGeoStore) Districts(ctx context.Context) ([]models.District, error) {
	return s.districts, nil
}

func (s *fakeGeoStore) Upazilas(ctx context.Context) ([]models.Upazila, error) {
	return s.upazilas, nil
}

type testEnv struct {
	app       *fiber.App
	donations *fakeDonationStore
	donors    *fakeDonorStore
	users     *fakeUserStore
	blogs     *fakeBlogStore
	geo       *fakeGeoStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		donations: &fakeDonationStore{},
		donors:    &fakeDonorStore{},
		users:     &fakeUserStore{},
		blogs:     &fakeBlogStore{},
		geo:       &fakeGeoStore{},
	}
	env.app = fiber.New()
	env.app.Use(middleware.JWTAuth(testSecret))
	routes.Register(env.app, routes.Deps{
		Users:     env.users,
		Donations: env.donations,
		Donors:    env.donors,
		Blogs:     env.blogs,
		Geo:       env.geo,
		JWTSecret: testSecret,
	})
	return env
}

// addUser seeds an account directly in the fake store and returns a signed
// token for it.
func (env *testEnv) addUser(t *testing.T, email, role, status string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	id, err := env.users.Insert(context.Background(), models.User{
		Name:         "Test User",
		Email:        strings.ToLower(email),
		BloodGroup:   "A+",
		Role:         role,
		Status:       status,
		PasswordHash: string(hash),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return signToken(t, id, email)
}

func signToken(t *testing.T, uid, email string) string {
	t.Helper()
	claims := middleware.Claims{
		UID:   uid,
		Email: email,
		Name:  "Test User",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
