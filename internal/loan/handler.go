package loan

import "github.com/gofiber/fiber/v2"

type CalculateRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermYears         int     `json:"termYears"`
}

// CalculateHandler exposes the calculator to clients that do not run it
// locally. Out-of-domain inputs degrade to a zero result, matching the
// library contract, so the endpoint only rejects unparseable bodies.
func CalculateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CalculateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		return c.JSON(Calculate(body.Principal, body.AnnualRatePercent, body.TermYears))
	}
}
