package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Server exposes a scenario-backed search over HTTP, plus a WebSocket
// stream of snapshots for live visualization
type Server struct {
	mu       sync.RWMutex
	scenario *Scenario
	search   *Search
	cfg      ServerConfig
	upgrader websocket.Upgrader
}

// NewServer builds the HTTP API around the given scenario
func NewServer(sc *Scenario, cfg ServerConfig) (*Server, error) {
	search, err := sc.NewSearch("")
	if err != nil {
		return nil, err
	}

	return &Server{
		scenario: sc,
		search:   search,
		cfg:      cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// Handler returns the routed API with CORS enabled on every endpoint
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", corsMiddleware(s.healthHandler))
	mux.HandleFunc("/api/scenario", corsMiddleware(s.scenarioHandler))
	mux.HandleFunc("/api/state", corsMiddleware(s.stateHandler))
	mux.HandleFunc("/api/step", corsMiddleware(s.stepHandler))
	mux.HandleFunc("/api/reset", corsMiddleware(s.resetHandler))
	mux.HandleFunc("/api/stream", s.streamHandler)
	return mux
}

// ReplaceScenario swaps in a new scenario and starts a fresh search.
// Handlers and the stream pick it up on their next access.
func (s *Server) ReplaceScenario(sc *Scenario) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	search, err := sc.NewSearch("")
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.scenario = sc
	s.search = search
	s.mu.Unlock()

	log.Printf("✅ Scenario replaced: %s (%dx%d, %s)\n", sc.Name, sc.Width, sc.Height, sc.Mode)
	return nil
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️  Failed to encode response: %v\n", err)
	}
}

// GET /health - Server and search status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	snap := s.search.Snapshot()
	name := s.scenario.Name
	s.mu.RUnlock()

	writeJSON(w, map[string]interface{}{
		"status":   "ready",
		"scenario": name,
		"grid":     fmt.Sprintf("%dx%d", snap.Width, snap.Height),
		"state":    snap.StateName,
		"steps":    snap.Steps,
	})
}

// GET /api/scenario - Current scenario
// POST /api/scenario - Replace the scenario and start a fresh search
func (s *Server) scenarioHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.RLock()
		sc := s.scenario
		s.mu.RUnlock()
		writeJSON(w, sc)

	case http.MethodPost:
		log.Println("========================================")
		log.Println("📍 Scenario replace request received")

		var sc Scenario
		if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
			log.Printf("❌ Invalid request body: %v\n", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := s.ReplaceScenario(&sc); err != nil {
			log.Printf("❌ Scenario rejected: %v\n", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.mu.RLock()
		snap := s.search.Snapshot()
		s.mu.RUnlock()

		log.Println("========================================")
		writeJSON(w, snap)

	default:
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// GET /api/state - Snapshot of the search at the current step boundary
func (s *Server) stateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	snap := s.search.Snapshot()
	s.mu.RUnlock()

	writeJSON(w, snap)
}

// POST /api/step?n=K - Advance the search K relaxation steps (default 1)
func (s *Server) stepHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	n := 1
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			log.Printf("❌ Invalid step count: %q\n", raw)
			http.Error(w, "Invalid step count", http.StatusBadRequest)
			return
		}
		n = parsed
	}

	s.mu.Lock()
	for i := 0; i < n && !s.search.State().Terminal(); i++ {
		s.search.Step()
	}
	snap := s.search.Snapshot()
	s.mu.Unlock()

	log.Printf("👣 Advanced to step %d (%s)\n", snap.Steps, snap.StateName)
	writeJSON(w, snap)
}

// POST /api/reset - Rebuild the search from the current scenario
func (s *Server) resetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	search, err := s.scenario.NewSearch("")
	if err != nil {
		s.mu.Unlock()
		log.Printf("❌ Failed to rebuild search: %v\n", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.search = search
	snap := search.Snapshot()
	s.mu.Unlock()

	log.Println("🔄 Search reset to step 0")
	writeJSON(w, snap)
}

// GET /api/stream - WebSocket pushing a snapshot every stream interval
func (s *Server) streamHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade failed: %v\n", err)
		return
	}
	defer conn.Close()

	log.Printf("🔌 Stream client connected: %s\n", r.RemoteAddr)

	ticker := time.NewTicker(time.Duration(s.cfg.StreamIntervalMS) * time.Millisecond)
	defer ticker.Stop()

	for {
		s.mu.RLock()
		snap := s.search.Snapshot()
		s.mu.RUnlock()

		if err := conn.WriteJSON(snap); err != nil {
			log.Printf("🔌 Stream client disconnected: %s\n", r.RemoteAddr)
			return
		}
		<-ticker.C
	}
}
