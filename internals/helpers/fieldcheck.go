package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FieldError is one record of the field-rule pipeline. The shape is uniform
// across every write endpoint.
type FieldError struct {
	Location string      `json:"location"`
	Msg      string      `json:"msg"`
	Param    string      `json:"param"`
	Value    interface{} `json:"value,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their json name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CheckFields runs the declared per-field rules (presence, type, range,
// length) of a request DTO and returns one record per failing field.
func CheckFields(req interface{}) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Location: "body", Msg: "Invalid value"}}
	}

	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		rec := FieldError{
			Location: "body",
			Msg:      msgForTag(fe.Tag()),
			Param:    fe.Field(),
		}
		if fe.Tag() != "required" {
			rec.Value = fe.Value()
		}
		out = append(out, rec)
	}
	return out
}

func msgForTag(tag string) string {
	switch tag {
	case "required":
		return "Field is required"
	case "min", "max", "len":
		return "Invalid length"
	case "email":
		return "Invalid email"
	default:
		return "Invalid value"
	}
}

// BindBody decodes the JSON body into dst. A malformed body is reported as a
// single field-error record so the caller can short-circuit like any other
// field failure.
func BindBody(c *fiber.Ctx, dst interface{}) []FieldError {
	if err := c.BodyParser(dst); err != nil {
		return []FieldError{{Location: "body", Msg: "Invalid value"}}
	}
	return nil
}
