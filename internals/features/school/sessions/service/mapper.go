package service

import "github.com/gofiber/fiber/v2"

// StatusForCreate maps a violation to the HTTP status of a create request:
// missing entities are 404, everything else 400.
func StatusForCreate(v Violation) int {
	if v.Category == CategoryNotFound {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

// StatusForUpdate differs from create in exactly one cell: a missing subject
// is reported as 400 on update. This mirrors the observed behavior and is
// kept as its own named mapping until the intended contract is confirmed.
func StatusForUpdate(v Violation) int {
	if v.Category == CategoryNotFound {
		if v.Message == MsgSubjectMissing {
			return fiber.StatusBadRequest
		}
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}
