// Package views holds the HTML templates of the dashboard.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// Engine parses the embedded templates. In dev mode they are re-parsed on
// every render.
func Engine(dev bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.Reload(dev)
	engine.AddFunc("columns", func(n int) int {
		if n > 1 {
			return 2
		}
		return 1
	})
	return engine
}
