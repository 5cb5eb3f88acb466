package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"bloodlink-backend/internal/middleware"
	"bloodlink-backend/internal/models"
	"bloodlink-backend/internal/repository"
)

// Register godoc
// @Summary Register a new user
// @Description Creates an account. Every registration is an active donor; roles are changed later by an admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "Register Request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /add-user [post]
func Register(users repository.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, email and password are required"})
		}
		if !models.IsBloodGroup(req.BloodGroup) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid blood group"})
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
		}

		user := models.User{
			Name:       req.Name,
			Email:      strings.ToLower(req.Email),
			Image:      req.Image,
			BloodGroup: req.BloodGroup,
			District:   req.District,
			Upazila:    req.Upazila,
			// Registration never chooses its own role or status.
			Role:         models.RoleDonor,
			Status:       models.AccountActive,
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		id, err := users.Insert(ctx, user)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id})
	}
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and issues the bearer token the authenticated endpoints require
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func Login(users repository.UserStore, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		user, err := users.ByEmail(ctx, req.Email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}

		claims := middleware.Claims{
			UID:   user.ID.Hex(),
			Email: user.Email,
			Name:  user.Name,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   user.ID.Hex(),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign token"})
		}

		return c.JSON(fiber.Map{"token": token, "user": user})
	}
}
