package webserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"

	"github.com/designedbycarl/adressbuch/internal/webserver/controller/auth"
)

// SetFQDN composes the Fully Qualified Domain Name of the host running the app and sets it
// as a local variable of the request
func SetFQDN(cfg Config) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		c.Locals("fqdn", fmt.Sprintf("%s://%s",
			c.Protocol(),
			cfg.FQDN,
		))
		return c.Next()
	}
}

// AllowIfNotLoggedIn only allows processing the request if there is no session
func AllowIfNotLoggedIn(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:" + auth.CookieName,
		SuccessHandler: func(c *fiber.Ctx) error {
			return c.Redirect("/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}

// RequireAuthentication returns forbidden and renders the login page if the
// visitor has not logged in. A request carrying an invite query parameter
// gets one automatic login attempt with it first.
func RequireAuthentication(jwtSecret []byte, authController *auth.Controller) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:" + auth.CookieName,
		SuccessHandler: func(c *fiber.Ctx) error {
			c.Locals("Session", sessionData(c))
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if invite := c.Query("invite"); invite != "" {
				return authController.SignInWithCode(c, invite)
			}
			return forbidden(c, err)
		},
	})
}

func forbidden(c *fiber.Ctx, err error) error {
	message := ""
	if err.Error() != "missing or malformed JWT" && c.Cookies(auth.CookieName) != "" {
		message = "Sitzung abgelaufen, bitte erneut anmelden."
	}
	return c.Status(fiber.StatusForbidden).Render("auth/login", fiber.Map{
		"Title": "Anmelden",
		"Error": message,
		"Code":  "",
	}, "layout")
}
