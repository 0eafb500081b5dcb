package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

func sessionData(c *fiber.Ctx) model.Session {
	var session model.Session

	if t, ok := c.Locals("user").(*jwt.Token); ok {
		claims := t.Claims.(jwt.MapClaims)
		if value, ok := claims["code"].(string); ok {
			session.Code = value
		}
		if value, ok := claims["exp"].(float64); ok {
			session.Exp = value
		}
	}

	return session
}
