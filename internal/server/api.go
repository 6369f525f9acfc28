package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jpbranski/clickfluencer/internal/game"
	"github.com/jpbranski/clickfluencer/internal/httpmw"
	"github.com/jpbranski/clickfluencer/internal/state"
	"github.com/jpbranski/clickfluencer/internal/telemetry"
)

// App holds what the handlers depend on.
type App struct {
	Engine    *game.Engine
	Telemetry telemetry.Repository
	Hub       *Hub
	Logger    *slog.Logger

	BootNow time.Time
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// NewHandler wires the full HTTP surface: REST routes for every
// player action, a websocket push feed, and health plumbing. The
// engine's pub/sub drives the hub so every mutation reaches connected
// clients without polling.
func NewHandler(app *App) http.Handler {
	if app.Logger == nil {
		app.Logger = slog.Default()
	}
	if app.Hub == nil {
		app.Hub = NewHub(app.Logger)
	}
	go app.Hub.Run()

	app.Engine.Subscribe(func(s *state.GameState) {
		app.Hub.Push("state", s)
	})

	mux := http.NewServeMux()
	rr := &RouteRegistry{}
	RegisterAPIRoutes(mux, rr, app)

	mux.HandleFunc("GET /ws", app.Hub.ServeWs)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"ok":      true,
			"service": "clickfluencer",
			"uptime":  time.Since(app.BootNow).Round(time.Second).String(),
		})
	})

	mux.HandleFunc("GET /api/routes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rr.List())
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(app.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(app.Logger),
	)
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	engine := app.Engine

	// Full state snapshot
	Handle(mux, rr, "GET /api/state", "Current game state", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.Snapshot())
	})

	// Derived display values
	Handle(mux, rr, "GET /api/derived", "Computed rates and prestige preview", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.DerivedValues())
	})

	// Manual click
	Handle(mux, rr, "POST /api/click", "Perform one click", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.Click())
	})

	// Buy generator, single or bulk via ?qty=N (&exact=1 for all-or-nothing)
	Handle(mux, rr, "POST /api/generators/{id}/buy", "Buy generator units", "", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		qty := 1
		if q := r.URL.Query().Get("qty"); q != "" {
			n, err := strconv.Atoi(q)
			if err != nil || n < 1 {
				http.Error(w, "qty must be a positive integer", http.StatusBadRequest)
				return
			}
			qty = n
		}

		switch {
		case qty == 1:
			res, err := engine.BuyGenerator(id)
			respond(w, res, err)
		case r.URL.Query().Get("exact") == "1":
			res, err := engine.BuyGeneratorBulkExact(id, qty)
			respond(w, res, err)
		default:
			res, err := engine.BuyGeneratorBulk(id, qty)
			if err != nil {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			writeJSON(w, res)
		}
	})

	// Buy upgrade
	Handle(mux, rr, "POST /api/upgrades/{id}/buy", "Buy the next step of an upgrade", "", func(w http.ResponseWriter, r *http.Request) {
		res, err := engine.BuyUpgrade(r.PathValue("id"))
		respond(w, res, err)
	})

	// Themes
	Handle(mux, rr, "POST /api/themes/{id}/purchase", "Unlock a theme with awards", "", func(w http.ResponseWriter, r *http.Request) {
		res, err := engine.PurchaseTheme(r.PathValue("id"))
		respond(w, res, err)
	})
	Handle(mux, rr, "POST /api/themes/{id}/activate", "Switch the active theme", "", func(w http.ResponseWriter, r *http.Request) {
		res, err := engine.ActivateTheme(r.PathValue("id"))
		respond(w, res, err)
	})

	// Notoriety
	Handle(mux, rr, "POST /api/notoriety/generators/{id}/buy", "Buy a notoriety generator level", "", func(w http.ResponseWriter, r *http.Request) {
		res, err := engine.BuyNotorietyGenerator(r.PathValue("id"))
		respond(w, res, err)
	})
	Handle(mux, rr, "POST /api/notoriety/upgrades/{id}/buy", "Buy a notoriety upgrade level", "", func(w http.ResponseWriter, r *http.Request) {
		res, err := engine.BuyNotorietyUpgrade(r.PathValue("id"))
		respond(w, res, err)
	})

	// Prestige reset
	Handle(mux, rr, "POST /api/prestige", "Reboot the career for prestige points", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.PrestigeReset())
	})

	// Settings
	Handle(mux, rr, "POST /api/settings", "Update one settings toggle", `{"key":"autoSave","value":false}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Key   string `json:"key"`
			Value bool   `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		res, err := engine.UpdateSetting(body.Key, body.Value)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, res)
	})

	// Persistence
	Handle(mux, rr, "POST /api/save", "Force an immediate save", "", func(w http.ResponseWriter, r *http.Request) {
		if err := engine.ForceSave(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]bool{"success": true})
	})
	Handle(mux, rr, "GET /api/export", "Export the save as JSON", "", func(w http.ResponseWriter, r *http.Request) {
		data, err := engine.Export()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="clickfluencer_save.json"`)
		_, _ = w.Write(data)
	})
	Handle(mux, rr, "POST /api/import", "Import (and migrate) a save document", "", func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := engine.Import(data); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		writeJSON(w, map[string]bool{"success": true})
	})
	Handle(mux, rr, "POST /api/reset", "Wipe all progress and start over", "", func(w http.ResponseWriter, r *http.Request) {
		if err := engine.ResetGame(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]bool{"success": true})
	})

	// Telemetry
	Handle(mux, rr, "GET /api/telemetry/stats", "Session activity stats (?since=RFC3339)", "", func(w http.ResponseWriter, r *http.Request) {
		if app.Telemetry == nil {
			http.Error(w, "telemetry disabled", http.StatusNotFound)
			return
		}
		since := app.BootNow
		if s := r.URL.Query().Get("since"); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				http.Error(w, "since must be RFC3339", http.StatusBadRequest)
				return
			}
			since = t
		}
		events, err := app.Telemetry.GetEvents(since, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		stats, err := telemetry.CalculateStats(events, since)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, stats)
	})
}

// respond maps an action outcome onto HTTP: unknown ids are 404,
// rule rejections are 200 with success=false so the UI can show the
// message without treating it as a transport failure.
func respond(w http.ResponseWriter, res any, err error) {
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, res)
}
