// HTTP viewer for the latest check result.
package admin

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"sync"

	"deconflict/internal/airspace"
	"deconflict/internal/detect"
)

//go:embed templates/index.html
var content embed.FS

// Server serves the most recent deconfliction result over HTTP. It is
// read-only: it never schedules or re-runs checks.
type Server struct {
	mu     sync.RWMutex
	runID  string
	result detect.Result
	tpl    *template.Template
}

// NewServer creates a server with an empty (clear) result.
func NewServer() *Server {
	tpl := template.Must(template.New("index.html").ParseFS(content, "templates/index.html"))
	return &Server{tpl: tpl, result: detect.Result{Clear: true}}
}

// SetResult stores the latest check outcome for serving.
func (s *Server) SetResult(runID string, res detect.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runID = runID
	s.result = res
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/verdict", s.handleVerdict)
	mux.HandleFunc("/conflicts", s.handleConflicts)
	return mux
}

// Start serves on addr until the listener fails.
func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) snapshot() (string, detect.Result) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runID, s.result
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	runID, res := s.snapshot()
	type row struct {
		Conflict airspace.Conflict
		Severity detect.Severity
	}
	data := struct {
		RunID     string
		Clear     bool
		Conflicts []row
	}{RunID: runID, Clear: res.Clear}
	for _, c := range res.Conflicts {
		data.Conflicts = append(data.Conflicts, row{Conflict: c, Severity: detect.Classify(c)})
	}
	s.tpl.Execute(w, data)
}

func (s *Server) handleVerdict(w http.ResponseWriter, r *http.Request) {
	runID, res := s.snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"run_id":    runID,
		"clear":     res.Clear,
		"conflicts": len(res.Conflicts),
	})
}

func (s *Server) handleConflicts(w http.ResponseWriter, r *http.Request) {
	_, res := s.snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res.Conflicts)
}
