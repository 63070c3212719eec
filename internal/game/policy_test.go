package game

import (
	"testing"

	"github.com/cardtable/blackjack/internal/console"
)

func TestDealerPolicy(t *testing.T) {
	policy := StandOn{Threshold: DealerThreshold}

	tests := []struct {
		name  string
		cards string
		want  Action
	}{
		{"sixteen hits", "Ts6h", Hit},
		{"hard seventeen stands", "Ts7h", Stand},
		{"soft seventeen stands", "As6h", Stand},
		{"twelve hits", "Ts2h", Hit},
		{"twenty one stands", "AsKs", Stand},
		{"empty hand hits", "", Hit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.Decide(handOf(t, tt.cards))
			if err != nil {
				t.Fatalf("Decide() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decide(%s) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestAutoPolicy(t *testing.T) {
	policy := StandOn{Threshold: AutoThreshold}

	tests := []struct {
		name  string
		cards string
		want  Action
	}{
		{"fifteen hits", "Ts5h", Hit},
		{"sixteen stands", "Ts6h", Stand},
		{"soft sixteen stands", "As5h", Stand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.Decide(handOf(t, tt.cards))
			if err != nil {
				t.Fatalf("Decide() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decide(%s) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestHumanPolicyValidInput(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{"h", Hit},
		{"H", Hit},
		{"hit", Hit},
		{"s", Stand},
		{"S", Stand},
		{"stand", Stand},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			policy := HumanPolicy{Console: console.NewScript(tt.input)}
			got, err := policy.Decide(handOf(t, "Ts5h"))
			if err != nil {
				t.Fatalf("Decide() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHumanPolicyReprompts(t *testing.T) {
	script := console.NewScript("x", "7", "", "s")
	policy := HumanPolicy{Console: script}

	got, err := policy.Decide(handOf(t, "Ts5h"))
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if got != Stand {
		t.Errorf("Decide() = %v, want Stand", got)
	}
	if !script.Exhausted() {
		t.Error("expected all scripted inputs to be consumed by reprompts")
	}
}

func TestHumanPolicyInputError(t *testing.T) {
	policy := HumanPolicy{Console: console.NewScript()}

	if _, err := policy.Decide(handOf(t, "Ts5h")); err == nil {
		t.Fatal("expected error when input is exhausted")
	}
}
