// Package action holds every state transition of the simulation.
// Expected business outcomes (can't afford, locked, maxed) come back
// as rejected Results, never as errors; errors are reserved for
// programmer faults such as unknown ids from internal callers.
package action

// Result reports whether a state transition was applied. A rejected
// Result means the state was not touched at all.
type Result struct {
	OK      bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func reject(msg string) Result {
	return Result{OK: false, Message: msg}
}

func accept() Result {
	return Result{OK: true}
}

// RNG is the randomness the action layer consumes. math/rand.Rand
// satisfies it; tests substitute fixed sequences.
type RNG interface {
	Float64() float64
}
