package server

import (
	_ "embed"
	"net/http"
)

//go:embed assets/dashboard.html
var dashboardHTML []byte

// getDashboard serves the interactive page. Rendering happens client-side;
// the page only consumes the /v1 endpoints.
func (s Server) getDashboard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(dashboardHTML) //nolint:errcheck
}
