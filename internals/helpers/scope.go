package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SchoolIDFrom resolves the tenant scope of a request. Reads take school_id
// from the JSON body; ?school_id= is accepted as a fallback.
func SchoolIDFrom(c *fiber.Ctx) (uuid.UUID, error) {
	var body struct {
		SchoolID uuid.UUID `json:"school_id"`
	}
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&body)
	}
	if body.SchoolID != uuid.Nil {
		return body.SchoolID, nil
	}
	if q := c.Query("school_id"); q != "" {
		id, err := uuid.Parse(q)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid school_id")
		}
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "school_id is required")
}

// ParseIDParam parses the :id path segment.
func ParseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}
