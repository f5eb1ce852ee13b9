// FILE: internal/transport/http/validator.go
package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// validationMiddleware parses and validates POST bodies before they
// reach the handlers. The validated struct is stored in Locals under
// "validatedBody".
func validationMiddleware(c *fiber.Ctx) error {
	method := c.Method()
	if method == fiber.MethodGet || method == fiber.MethodDelete || method == fiber.MethodOptions {
		return c.Next()
	}

	path := c.Path()
	var requestType any

	switch {
	case strings.HasSuffix(path, "/games") && method == fiber.MethodPost:
		requestType = &CreateGameRequest{}
	case strings.HasSuffix(path, "/moves") && method == fiber.MethodPost:
		requestType = &MoveRequest{}
	case strings.HasSuffix(path, "/undo") && method == fiber.MethodPost:
		// Undo accepts an empty body
		req := &UndoRequest{Count: 1}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(req); err != nil {
				return badRequest(c, "invalid request body", err.Error())
			}
		}
		if req.Count < 1 {
			req.Count = 1
		}
		c.Locals("validatedBody", req)
		return c.Next()
	default:
		return c.Next()
	}

	if err := c.BodyParser(requestType); err != nil {
		return badRequest(c, "invalid request body", err.Error())
	}

	if errs := validate.Struct(requestType); errs != nil {
		var details strings.Builder
		for _, err := range errs.(validator.ValidationErrors) {
			if details.Len() > 0 {
				details.WriteString("; ")
			}
			switch err.Tag() {
			case "required":
				details.WriteString(fmt.Sprintf("%s is required", err.Field()))
			case "oneof":
				details.WriteString(fmt.Sprintf("%s must be one of [%s]", err.Field(), err.Param()))
			case "len":
				details.WriteString(fmt.Sprintf("%s must be exactly %s characters", err.Field(), err.Param()))
			case "min":
				if err.Type().Kind() == reflect.String {
					details.WriteString(fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param()))
				} else {
					details.WriteString(fmt.Sprintf("%s must be at least %s", err.Field(), err.Param()))
				}
			case "max":
				if err.Type().Kind() == reflect.String {
					details.WriteString(fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param()))
				} else {
					details.WriteString(fmt.Sprintf("%s must be at most %s", err.Field(), err.Param()))
				}
			default:
				details.WriteString(fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag()))
			}
		}

		return badRequest(c, "validation failed", details.String())
	}

	c.Locals("validatedBody", requestType)
	return c.Next()
}

func badRequest(c *fiber.Ctx, msg, details string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   msg,
		Code:    CodeInvalidRequest,
		Details: details,
	})
}
