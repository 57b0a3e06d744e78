package api

import "github.com/gofiber/fiber/v2"

const (
	authCookieName = "sympta_auth"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (string, bool) {
	user, ok := c.Locals(contextUserKey).(string)
	return user, ok
}
