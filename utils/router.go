package utils

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// NewRouter constructs the base mux router with the health route. CORS is
// applied by wrapping the router (see CORSMiddleware): mux route middleware
// never runs for unmatched methods, which would break OPTIONS preflight.
func NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UnixMilli(),
		})
	}).Methods(http.MethodGet)
	return r
}
