package webserver_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/designedbycarl/adressbuch/internal/webserver/infrastructure"
)

func TestInvitations(t *testing.T) {
	db := infrastructure.Connect(":memory:", bootstrapCode)
	app := bootstrapApp(db, &geocoderMock{})

	cookie, err := login(app, bootstrapCode, t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	t.Run("The invitation form requires a session", func(t *testing.T) {
		response, err := getRequest(nil, app, "/invitations/new", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnForbiddenAndShowLogin(response, t)
	})

	t.Run("Issuing a code renders its shareable link", func(t *testing.T) {
		data := url.Values{
			"code": {" neu123 "},
		}
		response, err := postRequest(data, cookie, app, "/invitations", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)

		doc, err := goquery.NewDocumentFromReader(response.Body)
		if err != nil {
			t.Fatal(err)
		}

		link := doc.Find("#invitation-link").Text()
		if link != "http://localhost:3000/?invite=NEU123" {
			t.Errorf("Wrong invitation link: %q", link)
		}
		if !strings.Contains(doc.Text(), "Einladungscode erstellt!") {
			t.Error("Expected creation confirmation not found")
		}
	})

	t.Run("Issuing the same code again is not an error", func(t *testing.T) {
		data := url.Values{
			"code": {"NEU123"},
		}
		response, err := postRequest(data, cookie, app, "/invitations", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)

		doc, err := goquery.NewDocumentFromReader(response.Body)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(doc.Text(), "Einladung bereits vorhanden") {
			t.Error("Expected already-exists notice not found")
		}
		if link := doc.Find("#invitation-link").Text(); link != "http://localhost:3000/?invite=NEU123" {
			t.Errorf("Wrong invitation link: %q", link)
		}
	})

	t.Run("A freshly issued code grants access", func(t *testing.T) {
		if _, err := login(app, "NEU123", t); err != nil {
			t.Errorf("Unexpected error: %v", err.Error())
		}
	})

	t.Run("An empty code is rejected", func(t *testing.T) {
		data := url.Values{
			"code": {"   "},
		}
		response, err := postRequest(data, cookie, app, "/invitations", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusUnprocessableEntity, t)
	})

	t.Run("The invitation link is rendered as a scannable code", func(t *testing.T) {
		response, err := getRequest(cookie, app, "/invitations/qr?code=NEU123", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)

		if contentType := response.Header.Get("Content-Type"); contentType != "image/png" {
			t.Errorf("Expected a PNG response, got %q", contentType)
		}
	})
}
