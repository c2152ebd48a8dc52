package event

import (
	"errors"
	"strings"

	"harmony-backend/internal/database"
	"harmony-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Payload struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Validate requires name, date and description. Image is optional and the
// date format is not checked beyond being present.
func (p *Payload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)

	if p.Name == "" || p.Date == "" || p.Description == "" {
		return errors.New("event name, date and description are required")
	}
	return nil
}

func parseID(c *fiber.Ctx) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return bson.ObjectID{}, fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
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

		e := models.Event{
			Name:        body.Name,
			Date:        body.Date,
			Image:       body.Image,
			Description: body.Description,
		}
		if err := store.Create(c.Context(), &e); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to add the event. Please try again later.")
		}

		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

func ListHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := store.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error fetching events")
		}
		return c.JSON(events)
	}
}

func GetHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		e, err := store.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Event not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error fetching event")
		}
		return c.JSON(e)
	}
}

func UpdateHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body Payload
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		e, err := store.Update(c.Context(), id, &body)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Event not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error updating event")
		}
		return c.JSON(e)
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
				return fiber.NewError(fiber.StatusNotFound, "Event not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error deleting event")
		}
		return c.JSON(fiber.Map{"message": "Event deleted successfully"})
	}
}
