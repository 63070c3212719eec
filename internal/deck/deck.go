package deck

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyDeck is returned by Draw when no cards remain. A single round
// never comes close to exhausting a fresh deck, so hitting this indicates
// a caller bug; it is surfaced as an error rather than a panic so the
// round engine can abort cleanly.
var ErrEmptyDeck = errors.New("deck: no cards remaining")

// Deck is a 52-card deck, shuffled at construction. A Deck is owned by
// exactly one round and discarded afterwards; it is never refilled.
type Deck struct {
	cards []Card
}

// New creates a standard 52-card deck in uniformly random order.
func New() *Deck {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a shuffled deck using the supplied source, which
// lets tests fix the order.
func NewWithRand(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})

	return d
}

// NewStacked creates a deck that deals the given cards in order. Used by
// tests that need full control over the deal.
func NewStacked(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Draw removes and returns the top card of the deck.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Empty returns true if the deck has no cards left
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}
