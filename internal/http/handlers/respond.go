package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// responseTime renders the elapsed time of a request the way the API reports
// it: a millisecond count suffixed with "ms". Diagnostic only.
func responseTime(start time.Time) string {
	return fmt.Sprintf("%dms", time.Since(start).Milliseconds())
}

func errorJSON(c *fiber.Ctx, status int, msg, version string) error {
	body := fiber.Map{"error": msg}
	if version != "" {
		body["version"] = version
	}
	return c.Status(status).JSON(body)
}
