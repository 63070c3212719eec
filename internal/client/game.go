// Package client implements the interactive blackjack session: the main
// menu, profile management flows, and the bet/round loop that ties the
// round engine to the profile store.
package client

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cardtable/blackjack/internal/auth"
	"github.com/cardtable/blackjack/internal/console"
	"github.com/cardtable/blackjack/internal/deck"
	"github.com/cardtable/blackjack/internal/game"
	"github.com/cardtable/blackjack/internal/profile"
)

const backSentinel = "back"

// Game is one interactive play session from menu to quit.
type Game struct {
	config  *Config
	console console.Console
	store   *profile.Store
	gate    *auth.Gate
	engine  *game.Engine
	logger  *log.Logger

	session *profile.Session
	player  *game.Player
	dealer  *game.Player
	newDeck func() *deck.Deck
}

// New creates a game session. The view and all prompts run over the
// supplied console so the whole session is scriptable.
func New(config *Config, c console.Console, store *profile.Store, view game.View, logger *log.Logger) *Game {
	return &Game{
		config:  config,
		console: c,
		store:   store,
		gate:    auth.NewGate(c),
		engine:  game.NewEngine(view, logger),
		logger:  logger,
		newDeck: deck.New,
	}
}

// SetDeckSource overrides where round decks come from, which lets tests
// fix the deal.
func (g *Game) SetDeckSource(fn func() *deck.Deck) {
	g.newDeck = fn
}

// Run shows the rules and drives the main menu until a profile is active,
// then plays rounds until the operator quits or runs out of credits.
// Input reaching EOF ends the session cleanly.
func (g *Game) Run() error {
	g.showRules()

	for g.session == nil {
		done, err := g.mainMenu()
		if err != nil || done {
			return err
		}
	}

	return g.playRounds()
}

func (g *Game) showRules() {
	g.console.Println("=== Welcome to Blackjack ===")
	g.console.Println("Rules:")
	g.console.Println("1. Try to get as close to 21 without going over.")
	g.console.Println("2. Number cards are worth their number.")
	g.console.Println("3. Face cards (Jack, Queen, King) are worth 10.")
	g.console.Println("4. Ace can be 1 or 11.")
	g.console.Println("5. Dealer hits until 17 or higher.")
	g.console.Printf("6. Start with %d credits (or your saved balance). Place bets each round.\n",
		g.config.Game.StartingBalance)
}

// mainMenu runs one pass of the menu. It returns done=true when the
// operator quits (EOF or explicit exit) without starting a session.
func (g *Game) mainMenu() (bool, error) {
	g.console.Println("\nMain Menu:")
	g.console.Println("1. Show existing profiles")
	g.console.Println("2. Load existing profile")
	g.console.Println("3. Create new profile")
	g.console.Println("4. Delete profile")
	g.console.Println("5. Quit")

	choice, err := g.console.Prompt("Choice: ")
	if err != nil {
		return true, nil
	}

	switch choice {
	case "1":
		g.showProfiles()
	case "2":
		g.loadProfile()
	case "3":
		g.newProfile()
	case "4":
		g.deleteProfile()
	case "5", "q", "quit":
		g.console.Println("Goodbye!")
		return true, nil
	default:
		g.console.Println("Invalid choice.")
	}

	return false, nil
}

func (g *Game) listProfiles() []string {
	names, err := g.store.List()
	if err != nil {
		g.logger.Warn("listing profiles failed", "err", err)
		g.console.Println("Unable to read profiles.")
		return nil
	}
	return names
}

func (g *Game) showProfiles() {
	names := g.listProfiles()
	if len(names) == 0 {
		g.console.Println("No profiles found.")
		return
	}
	g.console.Println("Existing profiles:")
	for _, name := range names {
		g.console.Printf("- %s\n", name)
	}
}

// startSession activates a loaded record and builds the players.
func (g *Game) startSession(rec *profile.Record) {
	g.session = profile.NewSession(rec, g.store, g.logger)
	g.player = game.NewHumanPlayer(rec.Username, g.console)
	g.dealer = game.NewDealer()
}

func (g *Game) loadProfile() {
	for {
		names := g.listProfiles()
		if len(names) == 0 {
			g.console.Println("No profiles found. Create a new profile first.")
			return
		}

		g.console.Println("Existing profiles:")
		for _, name := range names {
			g.console.Printf("- %s\n", name)
		}
		g.console.Println("Type 'back' to return to the main menu.")

		selected, err := g.console.Prompt("Enter username to load: ")
		if err != nil || strings.EqualFold(selected, backSentinel) {
			return
		}

		if !g.store.Exists(selected) {
			g.console.Println("Profile not found. Try again.")
			continue
		}

		rec, err := g.store.Load(selected)
		if err != nil {
			g.logger.Warn("profile load failed", "username", selected, "err", err)
			g.console.Println("Unable to load profile. Try again.")
			continue
		}

		if rec.PasswordHash == "" {
			// Pre-password record: a password must be set before play.
			g.console.Println("This profile does not have a password yet. Please set one now.")
			hash, err := g.gate.SetPassword()
			if err != nil {
				// Canceling leaves the record untouched.
				return
			}
			rec.PasswordHash = hash
			g.startSession(rec)
			if err := g.session.Persist(); err != nil {
				g.console.Println("Warning: could not save the new password.")
			}
			g.console.Printf("Password set successfully. Balance: %d\n", rec.Balance)
			return
		}

		if err := g.gate.Authenticate(rec); err != nil {
			if errors.Is(err, auth.ErrAttemptsExhausted) {
				g.console.Println("Returning to main menu.")
			}
			return
		}

		g.startSession(rec)
		g.console.Printf("Profile loaded. Balance: %d\n", rec.Balance)
		return
	}
}

func (g *Game) newProfile() {
	for {
		username, err := g.console.Prompt("Enter new username (or type 'back' to return): ")
		if err != nil || strings.EqualFold(username, backSentinel) {
			return
		}

		if username == "" {
			g.console.Println("Username cannot be empty.")
			continue
		}
		if !profile.ValidUsername(username) {
			g.console.Println("Username contains invalid characters.")
			continue
		}
		if g.store.Exists(username) {
			g.console.Println("That username already exists. Choose another.")
			continue
		}

		hash, err := g.gate.SetPassword()
		if err != nil {
			return
		}

		rec := &profile.Record{
			Username:     username,
			PasswordHash: hash,
			Balance:      g.config.Game.StartingBalance,
		}
		g.startSession(rec)
		if err := g.session.Persist(); err != nil {
			g.console.Println("Warning: could not save the new profile.")
		}
		g.console.Printf("New profile created. Balance: %d\n", rec.Balance)
		return
	}
}

func (g *Game) deleteProfile() {
	names := g.listProfiles()
	if len(names) == 0 {
		g.console.Println("No profiles found to delete.")
		return
	}

	for {
		g.console.Println("Existing profiles:")
		for _, name := range names {
			g.console.Printf("- %s\n", name)
		}
		g.console.Println("Type 'back' to return to the main menu.")

		name, err := g.console.Prompt("Enter username to delete: ")
		if err != nil || strings.EqualFold(name, backSentinel) {
			return
		}

		if !g.store.Exists(name) {
			g.console.Println("Profile not found. Try again.")
			continue
		}

		confirm, err := g.console.Prompt("Are you sure you want to delete " + name + "? (y/n): ")
		if err != nil {
			return
		}
		if confirm == "y" || confirm == "Y" {
			removed, err := g.store.Delete(name)
			if err != nil || !removed {
				g.console.Println("Error deleting profile.")
			} else {
				g.console.Println("Profile deleted successfully.")
			}
		} else {
			g.console.Println("Deletion canceled.")
		}
		return
	}
}

// playRounds is the bet/round loop for the active session.
func (g *Game) playRounds() error {
	for {
		if g.session.Balance <= 0 {
			if err := g.session.Persist(); err != nil {
				g.console.Println("Warning: could not save your balance.")
			}
			if !g.handleZeroBalance() {
				return nil
			}
			continue
		}

		g.console.Printf("\nYour current balance: %d\n", g.session.Balance)

		bet, quit := g.promptBet()
		if quit {
			if err := g.session.Persist(); err != nil {
				g.console.Println("Warning: could not save your balance.")
			} else {
				g.console.Println("Game saved. Goodbye!")
			}
			g.session = nil
			g.player = nil
			g.dealer = nil
			return nil
		}

		outcome, err := g.engine.PlayRoundWithDeck(g.player, g.dealer, bet, g.newDeck())
		if err != nil {
			// A failed round makes no balance change.
			g.logger.Error("round aborted", "err", err)
			g.console.Println("The round could not be completed. Your balance is unchanged.")
			continue
		}

		g.session.Apply(outcome.Delta(bet))
		if err := g.session.Persist(); err != nil {
			g.console.Println("Warning: could not save your balance.")
		}
	}
}

// promptBet reads a bet between 1 and the current balance. A bet of 0
// quits; anything unparseable or out of range re-prompts.
func (g *Game) promptBet() (bet int, quit bool) {
	for {
		input, err := g.console.Prompt("Enter your bet (or 0 to quit): ")
		if err != nil {
			return 0, true
		}

		n, err := strconv.Atoi(input)
		if err != nil {
			g.console.Println("Enter a number.")
			continue
		}
		if n == 0 {
			return 0, true
		}
		if n < 0 || n > g.session.Balance {
			g.console.Println("Invalid bet.")
			continue
		}
		return n, false
	}
}

// handleZeroBalance runs the out-of-credits flow. It returns true when a
// replacement profile was created and play should continue, and false
// when the session is over.
func (g *Game) handleZeroBalance() bool {
	username := g.session.Username
	g.console.Println("You ran out of credits.")
	for {
		g.console.Println("1. Delete profile and exit")
		g.console.Println("2. Create a new profile")

		choice, err := g.console.Prompt("Choice: ")
		if err != nil {
			return false
		}

		switch choice {
		case "1":
			removed, err := g.store.Delete(username)
			if err != nil || !removed {
				g.console.Println("Unable to delete profile. Exiting game.")
			} else {
				g.console.Println("Profile deleted successfully. Goodbye!")
			}
			g.session = nil
			g.player = nil
			g.dealer = nil
			return false
		case "2":
			g.session = nil
			g.player = nil
			g.dealer = nil
			g.newProfile()
			if g.session != nil {
				return true
			}
			g.console.Println("Profile creation canceled. Please choose an option.")
		default:
			g.console.Println("Invalid choice.")
		}
	}
}
