package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/cardtable/blackjack/internal/deck"
)

// Outcome is the result of a round from the player's perspective.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomePush
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomePush:
		return "push"
	default:
		return "unknown"
	}
}

// Delta returns the balance change for the given bet: +bet on a win,
// -bet on a loss, 0 on a push.
func (o Outcome) Delta(bet int) int {
	switch o {
	case OutcomeWin:
		return bet
	case OutcomeLoss:
		return -bet
	default:
		return 0
	}
}

// Engine runs blackjack rounds. It owns the deal and the turn sequence;
// it never touches balances. The caller applies Outcome.Delta and
// persists the result.
type Engine struct {
	view   View
	logger *log.Logger
}

// NewEngine creates a round engine
func NewEngine(view View, logger *log.Logger) *Engine {
	return &Engine{view: view, logger: logger}
}

// PlayRound plays one round with a fresh shuffled deck.
func (e *Engine) PlayRound(player, dealer *Player, bet int) (Outcome, error) {
	return e.PlayRoundWithDeck(player, dealer, bet, deck.New())
}

// PlayRoundWithDeck plays one round from the supplied deck, which lets
// tests fix the card order. The deck must not be reused across rounds.
func (e *Engine) PlayRoundWithDeck(player, dealer *Player, bet int, d *deck.Deck) (Outcome, error) {
	if bet <= 0 {
		return OutcomePush, fmt.Errorf("bet must be positive, got %d", bet)
	}

	player.Hand.Reset()
	dealer.Hand.Reset()

	// Two cards each, player first, alternating.
	for i := 0; i < 2; i++ {
		for _, p := range []*Player{player, dealer} {
			card, err := d.Draw()
			if err != nil {
				return OutcomePush, fmt.Errorf("dealing to %s: %w", p.Name, err)
			}
			p.Hand.Add(card)
		}
	}

	e.logger.Debug("dealt round",
		"player", player.Hand.String(),
		"dealer", dealer.Hand.String(),
		"bet", bet)

	e.view.ShowDeal(player, dealer)

	if err := player.TakeTurn(d, e.view); err != nil {
		return OutcomePush, fmt.Errorf("player turn: %w", err)
	}

	if player.Hand.Busted() {
		// Dealer does not play against a busted hand.
		e.view.ShowResult(player, dealer, OutcomeLoss)
		return OutcomeLoss, nil
	}

	if err := dealer.TakeTurn(d, e.view); err != nil {
		return OutcomePush, fmt.Errorf("dealer turn: %w", err)
	}

	outcome := resolve(player.Hand.Value(), dealer.Hand.Value())
	e.logger.Debug("round resolved",
		"outcome", outcome,
		"playerTotal", player.Hand.Value(),
		"dealerTotal", dealer.Hand.Value())

	e.view.ShowResult(player, dealer, outcome)
	return outcome, nil
}

// resolve compares final totals. The player has already been ruled out
// as busted by the time this runs.
func resolve(playerTotal, dealerTotal int) Outcome {
	switch {
	case dealerTotal > 21 || playerTotal > dealerTotal:
		return OutcomeWin
	case playerTotal == dealerTotal:
		return OutcomePush
	default:
		return OutcomeLoss
	}
}
