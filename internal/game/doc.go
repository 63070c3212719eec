// Package game implements the core blackjack round logic.
//
// The main type is Engine, which runs a single betting round: it deals
// from a fresh deck, drives the player and dealer turn policies, and
// resolves the outcome. The engine owns all hand mutation; policies only
// look at a hand and choose Hit or Stand.
//
// # Basic Usage
//
//	player := game.NewHumanPlayer("alice", console)
//	dealer := game.NewDealer()
//	engine := game.NewEngine(view, logger)
//	outcome, err := engine.PlayRound(player, dealer, 50)
//	balance += outcome.Delta(50)
//
// # Deterministic Testing
//
// PlayRoundWithDeck accepts a pre-built deck so tests can fix the card
// order:
//
//	d := deck.NewWithRand(rand.New(rand.NewSource(42)))
//	outcome, err := engine.PlayRoundWithDeck(player, dealer, 50, d)
//
// Balances are never touched by the engine. The caller applies
// Outcome.Delta and persists it, which keeps the round logic pure with
// respect to profile storage.
package game
