// Package views embeds the HTML templates rendered by the Fiber html engine.
package views

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts/*.html auth/*.html students/*.html error.html
var FS embed.FS

const Layout = "layouts/main"

// NewEngine builds the template engine over the embedded files.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFunc("telURL", TelURL)
	engine.Reload(false)
	engine.Debug(false)
	return engine
}

// TelURL marks a "tel:" link as safe for href; anything else is dropped.
func TelURL(link string) template.URL {
	if !strings.HasPrefix(link, "tel:") {
		return ""
	}
	return template.URL(link)
}
