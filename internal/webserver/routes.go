package webserver

import (
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/websocket/v2"
)

func routes(app *fiber.App, controllers Controllers, cfg Config, jsDir fs.FS) {
	app.Use("/js", filesystem.New(filesystem.Config{
		Root: http.FS(jsDir),
	}))

	app.Use(SetFQDN(cfg))

	app.Get("/login", AllowIfNotLoggedIn(cfg.Secret()), controllers.Auth.Login)
	app.Post("/sessions", AllowIfNotLoggedIn(cfg.Secret()), controllers.Auth.SignIn)
	app.Get("/logout", controllers.Auth.SignOut)

	// Everything below requires a session. A request carrying an invite
	// query parameter gets one automatic login attempt on the way in.
	app.Use(RequireAuthentication(cfg.Secret(), controllers.Auth))

	app.Get("/", controllers.Addresses.List)
	app.Post("/addresses", controllers.Addresses.Create)
	app.Post("/addresses/import", controllers.Addresses.Import)
	app.Get("/addresses/suggestions", controllers.Addresses.Suggestions)
	app.Get("/addresses/:uuid<guid>/clipboard", controllers.Downloads.Address)
	app.Post("/addresses/:uuid<guid>/update", controllers.Addresses.Update)
	app.Post("/addresses/:uuid<guid>/delete", controllers.Addresses.Delete)

	app.Get("/export/csv", controllers.Downloads.CSV)
	app.Get("/export/xlsx", controllers.Downloads.XLSX)
	app.Get("/export/sheets", controllers.Downloads.Sheets)

	app.Get("/invitations/new", controllers.Invitations.NewForm)
	app.Post("/invitations", controllers.Invitations.Create)
	app.Get("/invitations/qr", controllers.Invitations.QR)

	app.Use("/feed", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/feed", websocket.New(controllers.Addresses.Feed()))
}
