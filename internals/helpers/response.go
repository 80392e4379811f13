package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Every endpoint answers with one of two envelopes:
//
//	{ "msg": ..., "success": bool }      for messages and field errors
//	{ "payload": ..., "success": true }  for reads
func JsonMessage(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{
		"msg":     msg,
		"success": code < fiber.StatusBadRequest,
	})
}

func JsonOK(c *fiber.Ctx, msg string) error {
	return JsonMessage(c, fiber.StatusOK, msg)
}

func JsonCreated(c *fiber.Ctx, msg string) error {
	return JsonMessage(c, fiber.StatusCreated, msg)
}

func JsonError(c *fiber.Ctx, code int, msg string) error {
	return JsonMessage(c, code, msg)
}

func JsonPayload(c *fiber.Ctx, payload interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"payload": payload,
		"success": true,
	})
}

// JsonFieldErrors reports the field-rule pipeline outcome; the msg member is
// the list of per-field error records.
func JsonFieldErrors(c *fiber.Ctx, errs []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"msg":     errs,
		"success": false,
	})
}

// FromFiberError turns an error bubbled out of a handler (usually
// *fiber.Error) into the standard envelope. Anything else is a 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
