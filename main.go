package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/game"
	"github.com/jpbranski/clickfluencer/internal/save"
	"github.com/jpbranski/clickfluencer/internal/server"
	"github.com/jpbranski/clickfluencer/internal/telemetry"
)

const PORT = "8420"

// Dev entrypoint: in-memory save store, default balance, no config
// file. The durable deployment lives in cmd/server.
func main() {
	app, err := SeedGame()
	if err != nil {
		log.Fatal(err)
	}

	report := app.Engine.Start()
	if report.Applied {
		fmt.Printf("offline progress: %.0f creds over %s\n", report.CredsEarned, report.TimeProcessed)
	}
	defer app.Engine.Stop()

	handler := server.NewHandler(app)

	addr := ":" + PORT
	fmt.Printf("clickfluencer listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func SeedGame() (*server.App, error) {
	saves := save.NewManager(save.NewMemoryStore(), "clickfluencer_save")
	events := telemetry.NewMemoryRepository()

	engine := game.New(game.Options{
		Balance:  config.Default(),
		Clock:    game.RealClock{},
		Saves:    saves,
		Recorder: telemetry.Recorder{Repo: events},
	})

	return &server.App{
		Engine:    engine,
		Telemetry: events,
		BootNow:   time.Now(),
	}, nil
}
