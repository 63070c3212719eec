package console

import (
	"fmt"
	"io"
	"strings"
)

// Script is a Console fed from a queue of canned inputs, for tests.
// Output is captured so assertions can inspect what the operator saw.
type Script struct {
	inputs []string
	pos    int
	out    strings.Builder
}

// NewScript creates a scripted console that will return the given inputs
// in order. Reading past the end returns io.EOF.
func NewScript(inputs ...string) *Script {
	return &Script{inputs: inputs}
}

func (s *Script) next() (string, error) {
	if s.pos >= len(s.inputs) {
		return "", io.EOF
	}
	in := s.inputs[s.pos]
	s.pos++
	return in, nil
}

func (s *Script) Prompt(msg string) (string, error) {
	s.out.WriteString(msg)
	return s.next()
}

func (s *Script) PromptPassword(msg string) (string, error) {
	s.out.WriteString(msg)
	return s.next()
}

func (s *Script) Printf(format string, args ...any) {
	fmt.Fprintf(&s.out, format, args...)
}

func (s *Script) Println(args ...any) {
	fmt.Fprintln(&s.out, args...)
}

// Output returns everything printed so far.
func (s *Script) Output() string {
	return s.out.String()
}

// Exhausted returns true if every scripted input has been consumed.
func (s *Script) Exhausted() bool {
	return s.pos >= len(s.inputs)
}
