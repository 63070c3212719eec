package game

import (
	"strings"

	"github.com/cardtable/blackjack/internal/console"
)

// Action is a turn decision
type Action int

const (
	Hit Action = iota
	Stand
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// DecisionPolicy chooses an action for the current hand. Policies never
// mutate the hand; the engine applies the chosen action.
type DecisionPolicy interface {
	Decide(h *Hand) (Action, error)
}

// StandOn is a fixed-threshold policy: hit while the hand value is below
// the threshold, stand otherwise. The dealer uses 17 and stands on any
// 17 including soft 17; that simplification is deliberate.
type StandOn struct {
	Threshold int
}

// Decide hits below the threshold and stands at or above it.
func (p StandOn) Decide(h *Hand) (Action, error) {
	if h.Value() < p.Threshold {
		return Hit, nil
	}
	return Stand, nil
}

// HumanPolicy asks the operator for each decision. Invalid input is
// re-prompted and does not count as a turn.
type HumanPolicy struct {
	Console console.Console
}

// Decide prompts for h/s until the operator gives a valid answer.
func (p HumanPolicy) Decide(h *Hand) (Action, error) {
	for {
		choice, err := p.Console.Prompt("Hit or stand? (h/s): ")
		if err != nil {
			return Stand, err
		}

		switch strings.ToLower(choice) {
		case "h", "hit":
			return Hit, nil
		case "s", "stand":
			return Stand, nil
		default:
			p.Console.Println("Invalid input, enter h or s.")
		}
	}
}
