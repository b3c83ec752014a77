// Package api provides the HTTP API for the game service.
// GET endpoints are public (read-only observation).
// The POST command endpoint requires a bearer token (admin control plane).
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/echoforge/internal/catalog"
	"github.com/talgya/echoforge/internal/game"
	"github.com/talgya/echoforge/internal/persistence"
)

// Server serves the game state over HTTP.
type Server struct {
	Session  *game.Session
	Store    *persistence.Store
	Hub      *Hub
	Port     int
	AdminKey string // Bearer token for the command endpoint. Empty = commands disabled.
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	commandLimiter := NewRateLimiter(120, time.Minute)

	mux := http.NewServeMux()

	// Public endpoints (GET, read-only).
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/state", s.handleState)
	mux.HandleFunc("/api/v1/rates", s.handleRates)
	mux.HandleFunc("/api/v1/quests", s.handleQuests)
	mux.HandleFunc("/api/v1/buildings", s.handleBuildings)
	mux.HandleFunc("/api/v1/monster", s.handleMonster)
	mux.HandleFunc("/api/v1/events", s.handleEvents)

	// Live stream.
	mux.HandleFunc("/ws", s.handleStream)

	// Admin terminal (POST, requires bearer token).
	mux.HandleFunc("/api/v1/command", s.adminOnly(RateLimitMiddleware(commandLimiter, s.handleCommand)))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		handler := corsMiddleware(mux)
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS env var to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on POST requests.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if s.AdminKey == "" {
				http.Error(w, "command endpoint disabled (no ECHOFORGE_ADMIN_KEY set)", http.StatusForbidden)
				return
			}

			if !s.checkBearerToken(r) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}

		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.Session.Snapshot()
	mult := s.Session.Multipliers()

	status := map[string]any{
		"character_created": st.Clock.Initialized,
		"name":              st.Player.Name,
		"race":              st.Player.Race,
		"level":             st.Player.Level,
		"exp":               humanize.CommafWithDigits(st.Player.Exp, 0),
		"exp_to_next":       humanize.CommafWithDigits(st.Player.ExpToNext, 0),
		"gold":              humanize.CommafWithDigits(st.Resources[catalog.ResourceGold], 0),
		"buildings":         st.TotalBuildings(),
		"quests_completed":  len(st.Quests.Completed),
		"monsters_defeated": st.Combat.TotalDefeated,
		"challenge_tiers":   fmt.Sprintf("%d/%d", len(st.Challenges.Completed), s.Session.Catalog().TotalChallengeTiers()),
		"ascensions":        st.Ascension.Count,
		"transcendences":    st.Transcendence.Count,
		"play_time":         humanize.RelTime(time.Now().Add(-time.Duration(st.LifetimeStats.PlayTime)*time.Second), time.Now(), "", ""),
		"multipliers": map[string]float64{
			"gold":        mult.Gold,
			"exp":         mult.Exp,
			"production":  mult.Production,
			"quest_speed": mult.QuestSpeed,
			"attack":      mult.Attack,
			"defense":     mult.Defense,
		},
	}

	writeJSON(w, status)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Session.Snapshot())
}

func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Session.Rates())
}

func (s *Server) handleQuests(w http.ResponseWriter, r *http.Request) {
	st := s.Session.Snapshot()
	cat := s.Session.Catalog()

	completed := make(map[string]bool, len(st.Quests.Completed))
	for _, id := range st.Quests.Completed {
		completed[id] = true
	}

	type questEntry struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		UnlockLevel int     `json:"unlock_level"`
		Timed       bool    `json:"timed"`
		AcceptedAt  float64 `json:"accepted_at,omitempty"`
		Completed   bool    `json:"completed"`
	}

	quests := make([]questEntry, 0, len(cat.Quests))
	for i := range cat.Quests {
		q := &cat.Quests[i]
		entry := questEntry{
			ID:          q.ID,
			Name:        q.Name,
			Description: q.Description,
			UnlockLevel: q.UnlockLevel,
			Timed:       q.TimeGated(),
			Completed:   completed[q.ID],
		}
		if at, ok := st.Quests.Accepted[q.ID]; ok {
			entry.AcceptedAt = at
		}
		quests = append(quests, entry)
	}

	writeJSON(w, map[string]any{
		"quests":  quests,
		"daily":   st.SpecialQuests.Daily,
		"weekly":  st.SpecialQuests.Weekly,
		"monthly": st.SpecialQuests.Monthly,
	})
}

func (s *Server) handleBuildings(w http.ResponseWriter, r *http.Request) {
	st := s.Session.Snapshot()
	cat := s.Session.Catalog()

	type buildingEntry struct {
		ID            string                       `json:"id"`
		Name          string                       `json:"name"`
		Owned         int                          `json:"owned"`
		Produces      catalog.Resource             `json:"produces"`
		PerSecond     float64                      `json:"per_second"`
		UnlockLevel   int                          `json:"unlock_level"`
		NextCost      map[catalog.Resource]float64 `json:"next_cost"`
		MaxAffordable int                          `json:"max_affordable"`
	}

	buildings := make([]buildingEntry, 0, len(cat.Buildings))
	for i := range cat.Buildings {
		b := &cat.Buildings[i]
		cost, err := s.Session.BuildingCost(b.ID, 1)
		if err != nil {
			continue
		}
		affordable, _ := s.Session.MaxAffordable(b.ID)
		buildings = append(buildings, buildingEntry{
			ID:            b.ID,
			Name:          b.Name,
			Owned:         st.Buildings[b.ID],
			Produces:      b.Produces,
			PerSecond:     b.BaseProduction * float64(st.Buildings[b.ID]),
			UnlockLevel:   b.UnlockLevel,
			NextCost:      cost,
			MaxAffordable: affordable,
		})
	}

	writeJSON(w, buildings)
}

func (s *Server) handleMonster(w http.ResponseWriter, r *http.Request) {
	st := s.Session.Snapshot()
	if st.Combat.CurrentMonster == nil {
		writeJSON(w, map[string]any{"monster": nil})
		return
	}
	writeJSON(w, st.Combat.CurrentMonster)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Session.Events(100))
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
