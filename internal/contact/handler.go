package contact

import (
	"errors"
	"strings"

	"harmony-backend/internal/database"
	"harmony-backend/internal/models"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (p *Payload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)

	if p.Name == "" || p.Email == "" || p.Subject == "" || p.Message == "" {
		return errors.New("all contact fields are required")
	}
	if !govalidator.IsEmail(p.Email) {
		return errors.New("invalid email address")
	}
	return nil
}

func parseID(c *fiber.Ctx) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return bson.ObjectID{}, fiber.NewError(fiber.StatusBadRequest, "Invalid message ID")
	}
	return id, nil
}

func CreateHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Payload
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		m := models.ContactMessage{
			Name:    body.Name,
			Email:   body.Email,
			Subject: body.Subject,
			Message: body.Message,
		}
		if err := store.Create(c.Context(), &m); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error creating contact")
		}

		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

func ListHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messages, err := store.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error fetching contact messages")
		}
		return c.JSON(messages)
	}
}

func GetHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		m, err := store.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Message not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error fetching message")
		}
		return c.JSON(m)
	}
}

func DeleteHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		if err := store.Delete(c.Context(), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Message not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error deleting message")
		}
		return c.JSON(fiber.Map{"message": "Message deleted successfully"})
	}
}
