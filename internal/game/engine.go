// Package game owns the live simulation: one GameState advanced by a
// fixed-interval tick loop, a probabilistic event scheduler, offline
// catch-up, autosave, and a synchronous pub/sub for state changes.
package game

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/jpbranski/clickfluencer/internal/action"
	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/notoriety"
	"github.com/jpbranski/clickfluencer/internal/prestige"
	"github.com/jpbranski/clickfluencer/internal/save"
	"github.com/jpbranski/clickfluencer/internal/state"
)

// Listener receives a state snapshot after every successful mutation.
// Snapshots are deep copies; listeners must not call back into the
// engine synchronously.
type Listener func(*state.GameState)

// Recorder receives notable engine activity for telemetry. Optional.
type Recorder interface {
	Record(eventType string, metadata map[string]any)
}

// Options wires an Engine. Zero fields get sensible defaults; only
// Balance is required in practice.
type Options struct {
	Balance  config.Balance
	Clock    Clock
	RNG      action.RNG
	Saves    *save.Manager
	Recorder Recorder
	Logger   *slog.Logger
	State    *state.GameState
}

type listenerEntry struct {
	id int
	fn Listener
}

// Engine is the single owner of a GameState. All mutation flows
// through its methods under one lock, so actions, ticks, and saves
// never observe half-applied state.
type Engine struct {
	bal   config.Balance
	clock Clock
	rng   action.RNG
	saves *save.Manager
	rec   Recorder
	log   *slog.Logger

	mu        sync.Mutex
	st        *state.GameState
	listeners []listenerEntry
	nextID    int

	running   bool
	stop      chan struct{}
	wg        sync.WaitGroup
	saveTimer *time.Timer
}

// New constructs an engine handle. There is deliberately no package
// global; the hosting application owns the instance.
func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.RNG == nil {
		opts.RNG = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.State == nil {
		opts.State = state.New(opts.Clock.Now())
	}
	return &Engine{
		bal:   opts.Balance,
		clock: opts.Clock,
		rng:   opts.RNG,
		saves: opts.Saves,
		rec:   opts.Recorder,
		log:   opts.Logger,
		st:    opts.State,
	}
}

// OfflineReport describes the one-time catch-up credit applied at
// startup.
type OfflineReport struct {
	Applied       bool          `json:"applied"`
	TimeAway      time.Duration `json:"time_away"`
	TimeProcessed time.Duration `json:"time_processed"`
	WasCapped     bool          `json:"was_capped"`
	CredsEarned   float64       `json:"creds_earned"`
}

// Start applies offline catch-up and launches the tick and event
// timers. Starting a running engine is a no-op.
func (e *Engine) Start() OfflineReport {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return OfflineReport{}
	}
	e.running = true
	e.stop = make(chan struct{})

	report := e.catchUpLocked()
	e.st.Stats.SessionStart = e.clock.Now().UnixMilli()
	e.mu.Unlock()

	if report.Applied {
		e.log.Info("offline catch-up applied",
			"away", report.TimeAway,
			"processed", report.TimeProcessed,
			"capped", report.WasCapped,
			"creds", report.CredsEarned)
		e.notify()
		e.markDirty()
	}

	e.wg.Add(1)
	go e.run()
	return report
}

// Stop halts the timers, waits for the loop to exit, and flushes a
// final save. Safe to call on a stopped engine.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	close(e.stop)
	if e.saveTimer != nil {
		e.saveTimer.Stop()
	}
	e.mu.Unlock()

	e.wg.Wait()

	if err := e.ForceSave(); err != nil {
		e.log.Error("final save failed", "err", err)
	}
}

func (e *Engine) run() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.bal.TickInterval)
	defer ticker.Stop()
	events := time.NewTicker(e.bal.EventCheckInterval)
	defer events.Stop()

	last := e.clock.Now()
	for {
		select {
		case <-e.stop:
			return
		case <-ticker.C:
			// Feed the measured delta, not the nominal interval, so
			// scheduler jitter never distorts production.
			now := e.clock.Now()
			delta := now.Sub(last)
			last = now

			e.mu.Lock()
			action.Tick(e.st, e.bal, delta, now)
			e.mu.Unlock()

			e.notify()
			e.markDirty()
		case <-events.C:
			e.maybeTriggerEvent()
		}
	}
}

func (e *Engine) maybeTriggerEvent() {
	e.mu.Lock()
	if len(e.st.ActiveEvents) >= e.bal.MaxActiveEvents || e.rng.Float64() >= e.bal.EventChance {
		e.mu.Unlock()
		return
	}
	def, ok := pickWeighted(state.DefaultEventDefs(), e.rng)
	if !ok {
		e.mu.Unlock()
		return
	}
	action.ApplyEvent(e.st, def, e.clock.Now())
	e.mu.Unlock()

	e.log.Info("random event", "id", def.ID, "multiplier", def.Multiplier, "duration", def.Duration)
	e.record("event_triggered", map[string]any{"event_id": def.ID})
	e.notify()
	e.markDirty()
}

// catchUpLocked credits production for the gap since the last save.
// Short gaps (tab refresh) and disabled offline progress skip it.
func (e *Engine) catchUpLocked() OfflineReport {
	now := e.clock.Now()
	away := now.Sub(time.UnixMilli(e.st.LastSaveTime))

	report := OfflineReport{TimeAway: away}
	if !e.st.Settings.OfflineProgress || away < e.bal.OfflineMinGap {
		return report
	}

	processed := away
	if processed > e.bal.OfflineCap {
		processed = e.bal.OfflineCap
		report.WasCapped = true
	}

	// Events saved mid-buff have long since lapsed; drop them so a
	// 30-second multiplier cannot scale hours of away time.
	action.ExpireEvents(e.st, now)

	earned := e.st.ProductionPerSecond(e.bal) * processed.Seconds() * e.st.OfflineEfficiency(e.bal)
	e.st.Creds += earned
	e.st.Stats.CredsEarned += earned

	report.Applied = true
	report.TimeProcessed = processed
	report.CredsEarned = earned
	return report
}

// Subscribe registers a listener and invokes it once immediately with
// the current state. The returned function unsubscribes.
func (e *Engine) Subscribe(fn Listener) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, listenerEntry{id: id, fn: fn})
	snap := e.st.Clone()
	e.mu.Unlock()

	e.call(fn, snap)

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, entry := range e.listeners {
			if entry.id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// notify fans out the post-mutation snapshot to every listener in
// registration order. Each call is isolated; a panicking listener is
// logged and the rest still run.
func (e *Engine) notify() {
	e.mu.Lock()
	entries := make([]listenerEntry, len(e.listeners))
	copy(entries, e.listeners)
	snap := e.st.Clone()
	e.mu.Unlock()

	for _, entry := range entries {
		e.call(entry.fn, snap)
	}
}

func (e *Engine) call(fn Listener, snap *state.GameState) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("listener panicked", "panic", r)
		}
	}()
	fn(snap)
}

func (e *Engine) record(eventType string, meta map[string]any) {
	if e.rec != nil {
		e.rec.Record(eventType, meta)
	}
}

// markDirty schedules a trailing-edge debounced save so 4Hz ticking
// does not write the store 4 times a second.
func (e *Engine) markDirty() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.saves == nil || !e.st.Settings.AutoSave {
		return
	}
	if e.saveTimer == nil {
		e.saveTimer = time.AfterFunc(e.bal.AutosaveDebounce, func() {
			if err := e.ForceSave(); err != nil {
				e.log.Error("autosave failed", "err", err)
			}
		})
		return
	}
	e.saveTimer.Reset(e.bal.AutosaveDebounce)
}

// ForceSave writes immediately, bypassing the debounce. A persistence
// fault is returned, not fatal; the engine keeps running in memory.
func (e *Engine) ForceSave() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.saves == nil {
		return nil
	}
	return e.saves.Save(e.st, e.clock.Now())
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() *state.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.Clone()
}

// Derived bundles the read-only display values the UI polls for.
type Derived struct {
	ClickPower          float64       `json:"click_power"`
	ProductionPerSecond float64       `json:"production_per_second"`
	UpkeepPerSecond     float64       `json:"upkeep_per_second"`
	NotorietyPerSecond  float64       `json:"notoriety_per_second"`
	PrestigePoints      float64       `json:"prestige_points"`
	TimeToPrestige      time.Duration `json:"time_to_prestige"`
	OfflineEfficiency   float64       `json:"offline_efficiency"`
}

// DerivedValues computes the current selector outputs.
func (e *Engine) DerivedValues() Derived {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Derived{
		ClickPower:          e.st.ClickPower(e.bal),
		ProductionPerSecond: e.st.ProductionPerSecond(e.bal),
		UpkeepPerSecond:     notoriety.TotalUpkeepPerSecond(e.st),
		NotorietyPerSecond:  notoriety.TotalYieldPerSecond(e.st),
		PrestigePoints:      prestige.Points(e.st, e.bal),
		TimeToPrestige:      prestige.EstimateTime(e.st, e.bal),
		OfflineEfficiency:   e.st.OfflineEfficiency(e.bal),
	}
}

// Click performs one manual click.
func (e *Engine) Click() action.ClickResult {
	e.mu.Lock()
	res := action.Click(e.st, e.bal, e.rng)
	e.mu.Unlock()

	e.record("click", map[string]any{"gained": res.Gained, "award": res.AwardDropped})
	e.notify()
	e.markDirty()
	return res
}

// BuyGenerator purchases one generator unit.
func (e *Engine) BuyGenerator(id string) (action.Result, error) {
	e.mu.Lock()
	res, err := action.BuyGenerator(e.st, e.bal, id)
	e.mu.Unlock()
	return e.finish("generator_purchased", map[string]any{"id": id}, res, err)
}

// BuyGeneratorBulk buys up to n units, best effort.
func (e *Engine) BuyGeneratorBulk(id string, n int) (action.BulkResult, error) {
	e.mu.Lock()
	res, err := action.BuyGeneratorBulk(e.st, e.bal, id, n)
	e.mu.Unlock()

	_, err = e.finish("generator_purchased", map[string]any{"id": id, "bought": res.Bought}, res.Result, err)
	return res, err
}

// BuyGeneratorBulkExact buys exactly n units at the summed bulk
// price, or nothing.
func (e *Engine) BuyGeneratorBulkExact(id string, n int) (action.Result, error) {
	e.mu.Lock()
	res, err := action.BuyGeneratorBulkExact(e.st, e.bal, id, n)
	e.mu.Unlock()
	return e.finish("generator_purchased", map[string]any{"id": id, "bought": n}, res, err)
}

// BuyUpgrade purchases the next step of an upgrade.
func (e *Engine) BuyUpgrade(id string) (action.Result, error) {
	e.mu.Lock()
	res, err := action.BuyUpgrade(e.st, e.bal, id)
	e.mu.Unlock()
	return e.finish("upgrade_purchased", map[string]any{"id": id}, res, err)
}

// PurchaseTheme unlocks a theme with awards.
func (e *Engine) PurchaseTheme(id string) (action.Result, error) {
	e.mu.Lock()
	res, err := action.PurchaseTheme(e.st, id)
	e.mu.Unlock()
	return e.finish("theme_purchased", map[string]any{"id": id}, res, err)
}

// ActivateTheme switches the active theme.
func (e *Engine) ActivateTheme(id string) (action.Result, error) {
	e.mu.Lock()
	res, err := action.ActivateTheme(e.st, id)
	e.mu.Unlock()
	return e.finish("theme_activated", map[string]any{"id": id}, res, err)
}

// BuyNotorietyGenerator purchases one drama producer unit.
func (e *Engine) BuyNotorietyGenerator(id string) (action.Result, error) {
	e.mu.Lock()
	res, err := action.BuyNotorietyGenerator(e.st, e.bal, id)
	e.mu.Unlock()
	return e.finish("notoriety_generator_purchased", map[string]any{"id": id}, res, err)
}

// BuyNotorietyUpgrade spends notoriety on the permanent tree.
func (e *Engine) BuyNotorietyUpgrade(id string) (action.Result, error) {
	e.mu.Lock()
	res, err := action.BuyNotorietyUpgrade(e.st, e.bal, id)
	e.mu.Unlock()
	return e.finish("notoriety_upgrade_purchased", map[string]any{"id": id}, res, err)
}

// UpdateSetting flips one engine toggle.
func (e *Engine) UpdateSetting(key string, value bool) (action.Result, error) {
	e.mu.Lock()
	res, err := action.UpdateSetting(e.st, key, value)
	e.mu.Unlock()
	return e.finish("setting_updated", map[string]any{"key": key, "value": value}, res, err)
}

// PrestigeReset performs the career reboot.
func (e *Engine) PrestigeReset() prestige.ResetResult {
	e.mu.Lock()
	res := prestige.Reset(e.st, e.bal)
	e.mu.Unlock()

	if res.OK {
		e.record("prestige_reset", map[string]any{"points": res.PointsGained})
		e.notify()
		e.markDirty()
	}
	return res
}

// ResetGame discards all progress and starts over.
func (e *Engine) ResetGame() error {
	e.mu.Lock()
	e.st = state.New(e.clock.Now())
	e.mu.Unlock()

	e.record("game_reset", nil)
	e.notify()

	if e.saves != nil {
		if err := e.saves.Delete(); err != nil {
			return err
		}
	}
	return e.ForceSave()
}

// Export renders the live state as shareable JSON.
func (e *Engine) Export() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return save.Export(e.st)
}

// Import replaces the live state wholesale with a decoded (and
// migrated) save document.
func (e *Engine) Import(data []byte) error {
	st, changes, err := save.Decode(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.st = st
	e.mu.Unlock()

	if len(changes) > 0 {
		e.log.Info("imported save migrated", "changes", changes)
	}
	e.notify()
	e.markDirty()
	return nil
}

func (e *Engine) finish(eventType string, meta map[string]any, res action.Result, err error) (action.Result, error) {
	if err != nil {
		return action.Result{}, err
	}
	if res.OK {
		e.record(eventType, meta)
		e.notify()
		e.markDirty()
	}
	return res, nil
}
