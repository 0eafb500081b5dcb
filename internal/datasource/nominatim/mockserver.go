package nominatim

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gosimple/slug"
)

// NewMockServer serves canned geocoding responses from fixturePath. The
// fixture file is picked by slugifying the `q` parameter; unknown queries
// fall back to the empty result set.
func NewMockServer(t *testing.T, fixturePath string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Expected to request '/search', got: %s", r.URL.Path)
			return
		}
		fixture := slug.Make(r.URL.Query().Get("q"))
		returnResponse(fixture, w, fixturePath)
	}))
}

func returnResponse(fixture string, w http.ResponseWriter, fixturePath string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	filePath := fmt.Sprintf("%s/%s.json", fixturePath, fixture)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		filePath = fmt.Sprintf("%s/no-results.json", fixturePath)
	}
	contents, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("Couldn't read contents of %s", filePath)
	}
	if _, err = w.Write(contents); err != nil {
		log.Fatalf("Couldn't write contents of %s", filePath)
	}
}
