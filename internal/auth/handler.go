package auth

import (
	"errors"
	"strings"

	"harmony-backend/internal/config"
	"harmony-backend/internal/database"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func SignupHandler(store *AdminStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SignupRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
		}
		if !govalidator.IsEmail(body.Email) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid email address")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error registering admin")
		}

		if _, err := store.Create(c.Context(), body.Email, string(hash)); err != nil {
			if errors.Is(err, ErrAdminExists) {
				return fiber.NewError(fiber.StatusBadRequest, "Admin already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error registering admin")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Admin registered successfully",
		})
	}
}

func LoginHandler(cfg *config.Config, store *AdminStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		admin, err := store.GetByEmail(c.Context(), body.Email)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error logging in")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
		}

		token, err := GenerateToken(cfg.JWTSecret, cfg.TokenTTL, admin.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error logging in")
		}

		return c.JSON(fiber.Map{"token": token})
	}
}

func ChangePasswordHandler(store *AdminStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, ok := c.Locals(CtxAdminIDKey).(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}
		id, err := bson.ObjectIDFromHex(adminID)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		var body ChangePasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.CurrentPassword == "" || body.NewPassword == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Current and new password are required")
		}

		admin, err := store.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Admin not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error changing password")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(body.CurrentPassword)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Current password is incorrect")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error changing password")
		}

		if err := store.UpdatePassword(c.Context(), id, string(hash)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error changing password")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Password changed successfully",
		})
	}
}

func DashboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the Admin Dashboard"})
	}
}
