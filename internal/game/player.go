package game

import (
	"github.com/cardtable/blackjack/internal/console"
	"github.com/cardtable/blackjack/internal/deck"
)

// Turn thresholds for the fixed policies. The dealer stands on any 17
// including soft 17; the automated player is one step more conservative.
const (
	DealerThreshold = 17
	AutoThreshold   = 16
)

// Player combines a name, a hand and a decision policy. The three
// variants (human, dealer, automated) differ only in policy.
type Player struct {
	Name   string
	Hand   Hand
	Policy DecisionPolicy
}

// NewDealer creates the dealer, which stands on 17.
func NewDealer() *Player {
	return &Player{
		Name:   "Dealer",
		Policy: StandOn{Threshold: DealerThreshold},
	}
}

// NewAutoPlayer creates an automated player that stands on 16.
func NewAutoPlayer(name string) *Player {
	return &Player{
		Name:   name,
		Policy: StandOn{Threshold: AutoThreshold},
	}
}

// NewHumanPlayer creates a player whose decisions come from the operator.
func NewHumanPlayer(name string, c console.Console) *Player {
	return &Player{
		Name:   name,
		Policy: HumanPolicy{Console: c},
	}
}

// TakeTurn runs the player's policy to completion: decide, draw on Hit,
// stop on Stand or bust. Drawn cards are announced through the view.
func (p *Player) TakeTurn(d *deck.Deck, view View) error {
	for {
		action, err := p.Policy.Decide(&p.Hand)
		if err != nil {
			return err
		}
		if action == Stand {
			view.ShowStand(p)
			return nil
		}

		card, err := d.Draw()
		if err != nil {
			return err
		}
		p.Hand.Add(card)
		view.ShowDraw(p, card)

		if p.Hand.Busted() {
			view.ShowBust(p)
			return nil
		}
	}
}
