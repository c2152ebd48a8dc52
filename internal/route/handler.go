package route

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
		return bson.ObjectID{}, fiber.NewError(fiber.StatusBadRequest, "Invalid root ID")
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

		r := models.Route{
			Name:        body.Name,
			Address:     body.Address,
			District:    body.District,
			ManagerName: body.ManagerName,
			PhoneNumber: body.PhoneNumber,
			Hours:       body.Hours,
		}
		if err := store.Create(c.Context(), &r); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error creating root")
		}

		return c.Status(fiber.StatusCreated).JSON(r)
	}
}

func ListHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roots, err := store.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error fetching roots")
		}
		return c.JSON(roots)
	}
}

func GetHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		r, err := store.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Root not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error fetching root")
		}
		return c.JSON(r)
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

		r, err := store.Update(c.Context(), id, &body)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Root not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error updating root")
		}
		return c.JSON(r)
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
				return fiber.NewError(fiber.StatusNotFound, "Root not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error deleting root")
		}
		return c.JSON(fiber.Map{"message": "Root deleted successfully"})
	}
}
