// Package console provides the line-oriented terminal abstraction used by
// the interactive parts of the game. Components receive a Console
// explicitly instead of reading a process-wide scanner, which keeps the
// menu, the authentication prompts and the human turn policy scriptable
// in tests.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console is the prompt/response surface the interactive components use.
type Console interface {
	// Prompt prints msg and reads one line of input, trimmed.
	Prompt(msg string) (string, error)
	// PromptPassword is Prompt with echo disabled when the input is a
	// terminal.
	PromptPassword(msg string) (string, error)
	Printf(format string, args ...any)
	Println(args ...any)
}

// Terminal is a Console over an arbitrary reader/writer pair. When the
// reader is an *os.File attached to a terminal, password prompts are
// masked via term.ReadPassword.
type Terminal struct {
	in  *bufio.Reader
	fd  int
	out io.Writer
}

// NewTerminal creates a Terminal console.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		in:  bufio.NewReader(in),
		fd:  -1,
		out: out,
	}
	if f, ok := in.(*os.File); ok {
		t.fd = int(f.Fd())
	}
	return t
}

// Stdio returns a Terminal console over stdin/stdout.
func Stdio() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout)
}

// Prompt prints msg and reads a single trimmed line.
func (t *Terminal) Prompt(msg string) (string, error) {
	fmt.Fprint(t.out, msg)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword reads a line without echoing it when attached to a
// terminal; otherwise it falls back to a plain line read.
func (t *Terminal) PromptPassword(msg string) (string, error) {
	if t.fd >= 0 && term.IsTerminal(t.fd) {
		fmt.Fprint(t.out, msg)
		b, err := term.ReadPassword(t.fd)
		fmt.Fprintln(t.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	return t.Prompt(msg)
}

func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

func (t *Terminal) Println(args ...any) {
	fmt.Fprintln(t.out, args...)
}
