package webserver

import (
	"embed"
	"errors"
	"io/fs"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/designedbycarl/adressbuch/internal/webserver/infrastructure"
)

//go:embed views
var viewsFS embed.FS

//go:embed js
var jsFS embed.FS

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	viewsDir, err := fs.Sub(viewsFS, "views")
	if err != nil {
		log.Fatal(err)
	}

	jsDir, err := fs.Sub(jsFS, "js")
	if err != nil {
		log.Fatal(err)
	}

	engine := infrastructure.TemplateEngine(viewsDir)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		AppName:               "Adressbuch",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	routes(app, controllers, cfg, jsDir)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if renderErr := c.Status(code).Render(
		"errors/error",
		fiber.Map{
			"Title":  "Fehler",
			"Status": code,
		},
		"layout"); renderErr != nil {
		log.Println(renderErr)
		// In case the Render fails
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return nil
}
