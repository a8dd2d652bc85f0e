package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voiceweather/weather-tool/internal/tool"
)

// RegisterRoutes wires the tool invocation handlers into the Fiber app.
// This is the boundary the conversational framework calls across: tool
// discovery plus invocation by name.
func RegisterRoutes(app *fiber.App, registry *tool.Registry) {
	v1 := app.Group("/api/v1")

	v1.Get("/tools", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"tools": registry.Definitions(),
		})
	})

	v1.Post("/tools/:name", func(c *fiber.Ctx) error {
		t, ok := registry.Get(c.Params("name"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "unknown tool")
		}

		args := map[string]any{}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&args); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "request body must be a JSON object")
			}
		}

		result, err := t.Execute(c.UserContext(), args)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "tool execution failed")
		}

		return c.JSON(result)
	})
}
