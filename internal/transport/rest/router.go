package rest

import "net/http"

// Routes collects the handlers served by the HTTP API.
type Routes struct {
	Progress *ProgressHandler
	Health   *HealthHandler
	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET "+rt.MetricsPath, rt.Metrics)
	}

	p := rt.Progress
	mux.HandleFunc("GET /api/progress", p.List)
	mux.HandleFunc("POST /api/progress/update", p.Update)
	mux.HandleFunc("GET /api/progress/words-to-review", p.Due)
	mux.HandleFunc("GET /api/progress/due", p.Due)
	mux.HandleFunc("GET /api/progress/learned-words", p.Learned)
	mux.HandleFunc("GET /api/progress/stats", p.Stats)
	mux.HandleFunc("POST /api/progress/{word_id}/review", p.Review)
	mux.HandleFunc("GET /api/progress/{word_id}/history", p.History)

	return mux
}
