package infrastructure

import (
	"io/fs"
	"net/http"
	"net/url"

	"github.com/gofiber/template/html/v2"
)

func TemplateEngine(viewsFS fs.FS) *html.Engine {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("urlquery", func(text string) string {
		return url.QueryEscape(text)
	})

	return engine
}
