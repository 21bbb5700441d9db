// Package handlers wires HTTP requests to the application services and
// renders the routed pages.
package handlers

import (
	"net/http"

	"github.com/amar2mail9/Polytechub.com/interfaces/web/templates"
	"github.com/amar2mail9/Polytechub.com/logging"
)

// RenderPage renders a named template page to the response. Render failures
// are terminal for the response, not the process.
func RenderPage(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Render(w, name, data); err != nil {
		logging.Error("template render failed", "template", name, "error", err)
	}
}
