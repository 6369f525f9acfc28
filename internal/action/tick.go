package action

import (
	"time"

	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/notoriety"
	"github.com/jpbranski/clickfluencer/internal/state"
)

// TickReport summarizes what one tick did.
type TickReport struct {
	Produced        float64 `json:"produced"`
	UpkeepPaid      float64 `json:"upkeep_paid"`
	NotorietyGained float64 `json:"notoriety_gained"`
}

// ApplyEvent activates a timed buff ending at now + duration.
func ApplyEvent(s *state.GameState, def state.EventDef, now time.Time) {
	s.ActiveEvents = append(s.ActiveEvents, state.ActiveEvent{
		ID:         def.ID,
		Name:       def.Name,
		Scope:      def.Scope,
		Multiplier: def.Multiplier,
		EndTime:    now.Add(def.Duration).UnixMilli(),
	})
}

// ExpireEvents drops every buff whose end time has passed.
func ExpireEvents(s *state.GameState, now time.Time) {
	nowMs := now.UnixMilli()
	kept := s.ActiveEvents[:0]
	for _, ev := range s.ActiveEvents {
		if ev.EndTime > nowMs {
			kept = append(kept, ev)
		}
	}
	s.ActiveEvents = kept
}

// Tick is the authoritative per-frame update. Production lands first,
// then upkeep drains creds without ever driving them negative: when
// creds cannot cover the interval's upkeep they drain to zero and the
// notoriety yield scales by the fraction of upkeep actually paid.
func Tick(s *state.GameState, bal config.Balance, delta time.Duration, now time.Time) TickReport {
	var report TickReport
	if delta <= 0 {
		return report
	}
	dt := delta.Seconds()

	produced := s.ProductionPerSecond(bal) * dt
	s.Creds += produced
	s.Stats.CredsEarned += produced
	report.Produced = produced

	upkeepDue := notoriety.TotalUpkeepPerSecond(s) * dt
	fraction := 1.0
	if upkeepDue > 0 {
		paid := upkeepDue
		if paid > s.Creds {
			paid = s.Creds
			fraction = paid / upkeepDue
		}
		s.Creds -= paid
		report.UpkeepPaid = paid
	}

	gained := notoriety.TotalYieldPerSecond(s) * dt * fraction
	s.Notoriety += gained
	s.Stats.NotorietyEarned += gained
	report.NotorietyGained = gained

	for i := range s.Generators {
		if !s.Generators[i].Unlocked && state.ShouldUnlock(s.Generators[i], s.Creds, bal) {
			s.Generators[i].Unlocked = true
		}
	}

	ExpireEvents(s, now)
	s.Stats.PlayTime += delta

	return report
}
