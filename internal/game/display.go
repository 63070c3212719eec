package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cardtable/blackjack/internal/deck"
)

// View receives round events for display. The engine drives it; a
// SilentView is used in tests and simulations.
type View interface {
	ShowDeal(player, dealer *Player)
	ShowDraw(p *Player, c deck.Card)
	ShowStand(p *Player)
	ShowBust(p *Player)
	ShowResult(player, dealer *Player, o Outcome)
}

// DisplayStyles contains styling for game output
type DisplayStyles struct {
	Header    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Win       lipgloss.Style
	Loss      lipgloss.Style
	Push      lipgloss.Style
	Info      lipgloss.Style
}

// NewDisplayStyles creates the default style set
func NewDisplayStyles() *DisplayStyles {
	return &DisplayStyles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Bold(true),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Loss: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Push: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// ConsoleView renders round events to a writer with lipgloss styling.
type ConsoleView struct {
	out    io.Writer
	styles *DisplayStyles
	color  bool
}

// NewConsoleView creates a console view. When color is false, or the
// terminal reports no color support, cards render unstyled.
func NewConsoleView(out io.Writer, color bool) *ConsoleView {
	if termenv.ColorProfile() == termenv.Ascii {
		color = false
	}
	return &ConsoleView{
		out:    out,
		styles: NewDisplayStyles(),
		color:  color,
	}
}

func (v *ConsoleView) card(c deck.Card) string {
	if !v.color {
		return c.String()
	}
	if c.IsRed() {
		return v.styles.CardRed.Render(c.String())
	}
	return v.styles.CardBlack.Render(c.String())
}

func (v *ConsoleView) hand(h *Hand) string {
	parts := make([]string, 0, h.Len())
	for _, c := range h.Cards() {
		parts = append(parts, v.card(c))
	}
	return strings.Join(parts, " ")
}

func (v *ConsoleView) styled(s lipgloss.Style, text string) string {
	if !v.color {
		return text
	}
	return s.Render(text)
}

// ShowDeal prints the player's starting hand and the dealer's upcard.
// The dealer's hole card stays unprinted until the dealer's turn.
func (v *ConsoleView) ShowDeal(player, dealer *Player) {
	upcard := dealer.Hand.Cards()[0]
	fmt.Fprintf(v.out, "\n%s\n", v.styled(v.styles.Header, "--- New round ---"))
	fmt.Fprintf(v.out, "Your hand: %s (%d)\n", v.hand(&player.Hand), player.Hand.Value())
	fmt.Fprintf(v.out, "Dealer shows: %s\n", v.card(upcard))
}

// ShowDraw announces a drawn card.
func (v *ConsoleView) ShowDraw(p *Player, c deck.Card) {
	fmt.Fprintf(v.out, "%s draws: %s (%d)\n", p.Name, v.card(c), p.Hand.Value())
}

// ShowStand announces a stand.
func (v *ConsoleView) ShowStand(p *Player) {
	fmt.Fprintf(v.out, "%s stands on %d.\n", p.Name, p.Hand.Value())
}

// ShowBust announces a bust.
func (v *ConsoleView) ShowBust(p *Player) {
	fmt.Fprintf(v.out, "%s busts with %d!\n", p.Name, p.Hand.Value())
}

// ShowResult prints both final hands and the result banner.
func (v *ConsoleView) ShowResult(player, dealer *Player, o Outcome) {
	fmt.Fprintf(v.out, "\nYour total: %d (%s)\n", player.Hand.Value(), v.hand(&player.Hand))
	fmt.Fprintf(v.out, "Dealer total: %d (%s)\n", dealer.Hand.Value(), v.hand(&dealer.Hand))

	switch o {
	case OutcomeWin:
		fmt.Fprintln(v.out, v.styled(v.styles.Win, "You win this round!"))
	case OutcomeLoss:
		fmt.Fprintln(v.out, v.styled(v.styles.Loss, "Dealer wins this round."))
	case OutcomePush:
		fmt.Fprintln(v.out, v.styled(v.styles.Push, "Push. No balance change."))
	}
}

// SilentView discards all round events.
type SilentView struct{}

func (SilentView) ShowDeal(player, dealer *Player) {}

func (SilentView) ShowDraw(p *Player, c deck.Card) {}

func (SilentView) ShowStand(p *Player) {}

func (SilentView) ShowBust(p *Player) {}

func (SilentView) ShowResult(player, dealer *Player, o Outcome) {}
