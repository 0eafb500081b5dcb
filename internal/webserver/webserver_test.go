package webserver_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/designedbycarl/adressbuch/internal/datasource/nominatim"
	"github.com/designedbycarl/adressbuch/internal/webserver"
	"github.com/designedbycarl/adressbuch/internal/webserver/controller/auth"
)

// bootstrapCode is seeded into every test database so there is always one
// valid invitation to log in with.
const bootstrapCode = "OMA2024"

type geocoderMock struct {
	results     []nominatim.Result
	err         error
	calls       int
	lastQuery   string
	lastCountry string
}

func (g *geocoderMock) Search(ctx context.Context, query, countryCode string) ([]nominatim.Result, error) {
	g.calls++
	g.lastQuery = query
	g.lastCountry = countryCode
	return g.results, g.err
}

func bootstrapApp(db *gorm.DB, geocoder *geocoderMock) *fiber.App {
	cfg := webserver.Config{
		Port:           "3000",
		FQDN:           "localhost:3000",
		JwtSecret:      "test-secret",
		SessionTimeout: 24 * time.Hour,
	}

	controllers := webserver.SetupControllers(cfg, db, geocoder)
	return webserver.New(cfg, controllers)
}

func login(app *fiber.App, code string, t *testing.T) (*http.Cookie, error) {
	t.Helper()

	data := url.Values{
		"code": {code},
	}

	req, err := http.NewRequest(http.MethodPost, "/sessions", strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(req)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusFound {
		return nil, fmt.Errorf("login with code %q failed with status %d", code, response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie, nil
		}
	}
	return nil, fmt.Errorf("no session cookie set after login")
}

func getRequest(cookie *http.Cookie, app *fiber.App, target string, t *testing.T) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return app.Test(req)
}

func postRequest(data url.Values, cookie *http.Cookie, app *fiber.App, target string, t *testing.T) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, target, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return app.Test(req)
}

func mustReturnStatus(response *http.Response, expectedStatus int, t *testing.T) {
	t.Helper()

	if response.StatusCode != expectedStatus {
		t.Errorf("Expected status %d, received %d", expectedStatus, response.StatusCode)
	}
}

func mustReturnForbiddenAndShowLogin(response *http.Response, t *testing.T) {
	t.Helper()

	mustReturnStatus(response, fiber.StatusForbidden, t)

	doc, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Find("form[action='/sessions']").Length() == 0 {
		t.Error("Expected login form not found")
	}
}
