package gateway

import (
	_ "embed"
	"net/http"
)

//go:embed ui.html
var uiPage []byte

// handleUI serves the single-page chat client.
func (s *Server) handleUI(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(uiPage)
}
