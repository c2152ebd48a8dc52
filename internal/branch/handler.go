package branch

import (
	"errors"

	"harmony-backend/internal/database"
	"harmony-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func parseID(c *fiber.Ctx) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return bson.ObjectID{}, fiber.NewError(fiber.StatusBadRequest, "Invalid branch ID")
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

		b := models.Branch{
			Name:     body.Name,
			Address:  body.Address,
			District: body.District,
			Phone:    body.Phone,
			Manager:  body.Manager,
			Hours:    body.Hours,
		}
		if err := store.Create(c.Context(), &b); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to add the branch. Please try again later.")
		}

		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

func ListHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branches, err := store.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error fetching branches")
		}
		return c.JSON(branches)
	}
}

func GetHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		b, err := store.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Branch not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error fetching branch")
		}
		return c.JSON(b)
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

		b, err := store.Update(c.Context(), id, &body)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Branch not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error updating branch")
		}
		return c.JSON(b)
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
				return fiber.NewError(fiber.StatusNotFound, "Branch not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error deleting branch")
		}
		return c.JSON(fiber.Map{"message": "Branch deleted successfully"})
	}
}
