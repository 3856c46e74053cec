// Package server exposes the calculator over HTTP: catalog lookups,
// one-shot damage calculations and a websocket stream for interactive
// build editors.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/sigmazhou/warframe-damage-calculator/internal/config"
	"github.com/sigmazhou/warframe-damage-calculator/internal/data"
	"github.com/sigmazhou/warframe-damage-calculator/internal/engine"
	"github.com/sigmazhou/warframe-damage-calculator/internal/model"
)

// Server holds the request-independent state: the engine, the mod
// catalog and the simulation caps. All request state is local to each
// handler call.
type Server struct {
	cfg      config.Config
	engine   *engine.Engine
	catalog  *data.Catalog
	upgrader websocket.Upgrader
}

// New builds a Server around an engine and a loaded catalog.
func New(cfg config.Config, eng *engine.Engine, catalog *data.Catalog) *Server {
	return &Server{
		cfg:     cfg,
		engine:  eng,
		catalog: catalog,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/mods", s.handleMods)
	mux.HandleFunc("GET /api/search-mods", s.handleSearchMods)
	mux.HandleFunc("GET /api/enemy-types", s.handleEnemyTypes)
	mux.HandleFunc("GET /api/ingame-buffs", s.handleInGameBuffs)
	mux.HandleFunc("POST /api/calculate-damage", s.handleCalculateDamage)
	mux.HandleFunc("GET /api/ws", s.handleWS)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMods(w http.ResponseWriter, r *http.Request) {
	mods := make([]model.ModBonus, 0, s.catalog.Len())
	for _, name := range s.catalog.Names() {
		m, _ := s.catalog.Get(name)
		mods = append(mods, m)
	}
	writeJSON(w, http.StatusOK, map[string]any{"mods": mods})
}

func (s *Server) handleSearchMods(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	hits := []model.ModBonus{}
	// queries under two characters match everything; return nothing
	// instead, matching the UI's incremental-search contract
	if len(query) >= 2 {
		hits = append(hits, s.catalog.Search(query)...)
	}
	writeJSON(w, http.StatusOK, map[string]any{"mods": hits})
}

func (s *Server) handleEnemyTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"enemy_types": model.Factions})
}

// buffFields documents the accepted in_game_buffs keys for UI clients.
var buffFields = []map[string]string{
	{"name": "galvanized_shot", "description": "stacks 0-3, flat critical damage per stack"},
	{"name": "galvanized_aptitude", "description": "stacks, additive status chance per stack"},
	{"name": "final_additive_cd", "description": "flat critical damage added after all multipliers"},
	{"name": "attack_speed", "description": "flat attack speed added after mod scaling"},
	{"name": "num_debuffs", "description": "active enemy debuffs, each amplifies total damage"},
	{"name": "final_multiplier", "description": "applied last to direct and dot damage"},
	{"name": "elements", "description": "element type to contribution mapping"},
}

func (s *Server) handleInGameBuffs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"buffs": buffFields})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
