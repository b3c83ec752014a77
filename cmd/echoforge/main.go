// Command echoforge runs the EchoForge idle progression game service.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/echoforge/internal/api"
	"github.com/talgya/echoforge/internal/catalog"
	"github.com/talgya/echoforge/internal/game"
	"github.com/talgya/echoforge/internal/persistence"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("EchoForge idle progression engine")

	dbPath := envOr("ECHOFORGE_DB", "data/echoforge.db")
	apiPort := 8080
	if p := os.Getenv("ECHOFORGE_PORT"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			slog.Error("bad ECHOFORGE_PORT", "value", p)
			os.Exit(1)
		}
		apiPort = n
	}

	// ── Content ───────────────────────────────────────────────────────
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		slog.Error("content validation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("content loaded",
		"buildings", len(cat.Buildings),
		"quests", len(cat.Quests),
		"achievements", len(cat.Achievements),
		"monsters", len(cat.Monsters),
		"challenge_chains", len(cat.Chains),
	)

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(dbPath), 0755)
	store, err := persistence.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("database opened", "path", dbPath)

	// ── Load or Start Fresh ───────────────────────────────────────────
	state, err := store.Load(persistence.DefaultSlot)
	if err != nil {
		slog.Error("failed to load save", "error", err)
		os.Exit(1)
	}

	clock := game.RealClock{}
	rng := game.NewRNG(time.Now().UnixNano())
	session := game.NewSession(cat, clock, rng, state)

	if state != nil {
		offline := time.Since(time.UnixMilli(state.Clock.LastTick))
		applied := session.CatchUp(offline)
		slog.Info("save restored",
			"name", state.Player.Name,
			"level", state.Player.Level,
			"offline", offline.Round(time.Second),
			"caught_up_seconds", applied,
		)
	} else {
		slog.Info("no save found, starting fresh")
	}

	// ── Loop + Stream ─────────────────────────────────────────────────
	hub := api.NewHub()
	go hub.Run()

	loop := game.NewLoop(session, clock)
	loop.OnTick = func(tick uint64) {
		// Broadcast at 1Hz; every tick would flood slow clients.
		if tick%10 == 0 {
			hub.BroadcastSnapshot(session.Snapshot(), session.Events(20))
		}
	}
	loop.OnAutosave = func() {
		if err := store.Save(persistence.DefaultSlot, session.Snapshot()); err != nil {
			slog.Error("autosave failed", "error", err)
		}
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	adminKey := os.Getenv("ECHOFORGE_ADMIN_KEY")
	if adminKey == "" {
		slog.Warn("ECHOFORGE_ADMIN_KEY not set, command endpoint disabled")
	}

	apiServer := &api.Server{
		Session:  session,
		Store:    store,
		Hub:      hub,
		Port:     apiPort,
		AdminKey: adminKey,
	}
	apiServer.Start()

	// ── Start ─────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		loop.Stop()
	}()

	snap := session.Snapshot()
	if snap.Clock.Initialized {
		fmt.Printf("\nWelcome back, %s the %s (level %d, %s gold).\n",
			snap.Player.Name, snap.Player.Race, snap.Player.Level,
			humanize.CommafWithDigits(snap.Resources[catalog.ResourceGold], 0))
	} else {
		fmt.Println("\nNo character yet. Create one via the command endpoint.")
	}
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", apiPort)
	fmt.Println("Starting game loop... (Ctrl+C to stop)")

	loop.Run()

	// Final save on shutdown.
	slog.Info("final save...")
	if err := store.Save(persistence.DefaultSlot, session.Snapshot()); err != nil {
		slog.Error("final save failed", "error", err)
	}

	fmt.Println("Game stopped. State saved.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
