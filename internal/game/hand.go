package game

import (
	"strings"

	"github.com/cardtable/blackjack/internal/deck"
)

// Hand is a player's cards for one round. Cards are only ever appended
// through Add; the value is recomputed from the cards on every call so it
// can never go stale.
type Hand struct {
	cards []deck.Card
}

// Add appends a card to the hand. This is the single mutation entry point.
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Reset clears the hand for a new round.
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
}

// Cards returns a copy of the cards in the hand.
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Value returns the best blackjack total for the hand. Every Ace starts
// at 11; while the total exceeds 21 and an Ace is still counted high,
// one Ace is reduced to 1. An empty hand scores 0.
func (h *Hand) Value() int {
	total := 0
	aces := 0
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsSoft returns true if an Ace is currently counted as 11.
func (h *Hand) IsSoft() bool {
	total := 0
	aces := 0
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return aces > 0
}

// Busted returns true if the hand value exceeds 21.
func (h *Hand) Busted() bool {
	return h.Value() > 21
}

// String renders the hand as space-separated cards (e.g. "A♠ T♥").
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
