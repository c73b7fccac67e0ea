package response

import (
	"github.com/gofiber/fiber/v2"
)

// ResponseModel is the envelope every endpoint replies with.
type ResponseModel struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func ResponseOK(c *fiber.Ctx, message string) error {
	response := ResponseModel{
		Success: true,
		Message: message,
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func ResponseOKWithData(c *fiber.Ctx, message string, data interface{}) error {
	response := ResponseModel{
		Success: true,
		Message: message,
		Data:    data,
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func ResponseCreated(c *fiber.Ctx, message string, data interface{}) error {
	response := ResponseModel{
		Success: true,
		Message: message,
		Data:    data,
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

func ResponseError(c *fiber.Ctx, message string, code int) error {
	response := ResponseModel{
		Success: false,
		Message: message,
	}

	return c.Status(code).JSON(response)
}

func ResponseValidationError(c *fiber.Ctx, errors []string) error {
	response := ResponseModel{
		Success: false,
		Message: ValidationFailed,
		Errors:  errors,
	}

	return c.Status(fiber.StatusUnprocessableEntity).JSON(response)
}
