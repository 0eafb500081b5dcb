package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

// SignIn checks the submitted invitation code and gives the visitor a JWT.
func (a *Controller) SignIn(c *fiber.Ctx) error {
	return a.SignInWithCode(c, c.FormValue("code"))
}

// SignInWithCode runs the login flow for the given raw code. It is also
// called by the authentication middleware when a request arrives with an
// invite query parameter. A wrong code never errors, it re-renders the
// login page with the failure.
func (a *Controller) SignInWithCode(c *fiber.Ctx, code string) error {
	normalized := model.NormalizeCode(code)

	var invitation *model.Invitation
	if normalized != "" {
		var err error
		invitation, err = a.repository.FindValid(normalized)
		if err != nil {
			return fiber.ErrInternalServerError
		}
	}

	if invitation == nil {
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Title": "Anmelden",
			"Error": "Ungültiger Einladungscode",
			"Code":  normalized,
		}, "layout")
	}

	// Send back JWT as a cookie.
	expiration := time.Now().Add(a.config.SessionTimeout)
	signedToken, err := GenerateToken(normalized, expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    signedToken,
		Path:     "/",
		MaxAge:   int(a.config.SessionTimeout.Seconds()),
		Secure:   false,
		HTTPOnly: true,
	})

	return c.Redirect("/")
}

func GenerateToken(code string, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"code": code,
		"exp":  jwt.NewNumericDate(expiration),
	})

	return token.SignedString(secret)
}
