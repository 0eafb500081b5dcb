package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/designedbycarl/adressbuch/internal/datasource/nominatim"
	"github.com/designedbycarl/adressbuch/internal/webserver"
	"github.com/designedbycarl/adressbuch/internal/webserver/infrastructure"
)

var version string = "unknown"

func main() {
	var cfg webserver.Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Errorf("error parsing configuration from environment variables: %w", err))
	}

	db := infrastructure.Connect(cfg.DbPath, cfg.BootstrapCode)

	geocoder := nominatim.NewService(cfg.NominatimURL, &http.Client{
		Timeout: 10 * time.Second,
	})

	controllers := webserver.SetupControllers(cfg, db, geocoder)
	app := webserver.New(cfg, controllers)

	fmt.Printf("Adressbuch version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
