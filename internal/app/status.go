package app

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vk/roomwalk/internal/explorer"
)

// statusResponse is the body of GET /status.
type statusResponse struct {
	Expedition string             `json:"expedition,omitempty"`
	Running    bool               `json:"running"`
	Progress   *explorer.Progress `json:"progress,omitempty"`
}

// healthHandler answers liveness probes.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// statusHandler reports the progress of the running session, if any.
func (a *App) statusHandler(w http.ResponseWriter, r *http.Request) {
	name, progress := a.snapshotActive()
	resp := statusResponse{
		Expedition: name,
		Running:    progress != nil,
		Progress:   progress,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Error("Failed to write status response.", "error", err)
	}
}

// startStatusServer initializes and runs the status HTTP server.
func (a *App) startStatusServer(port int) {
	a.logger.Debug("Configuring status server.")
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.HandleFunc("/status", a.statusHandler)

	addr := fmt.Sprintf(":%d", port)

	a.logger.Info("🩺 Status server starting", "address", fmt.Sprintf("http://localhost%s/status", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		a.logger.Error("Status server failed", "error", err)
	}
}
