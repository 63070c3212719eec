package main

import (
	"os"

	"github.com/cardtable/blackjack/cmd/blackjack/shared"
	"github.com/cardtable/blackjack/internal/client"
	"github.com/cardtable/blackjack/internal/console"
	"github.com/cardtable/blackjack/internal/game"
	"github.com/cardtable/blackjack/internal/profile"
)

type PlayCmd struct {
	Config  string `kong:"default='blackjack.hcl',help='Path to the HCL config file'"`
	DataDir string `kong:"help='Directory holding profile files (overrides config)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	config, err := client.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.DataDir != "" {
		config.Storage.DataDir = c.DataDir
	}

	logger := shared.SetupLogger(c.Debug || config.UI.Debug)

	store, err := profile.NewStore(config.Storage.DataDir)
	if err != nil {
		return err
	}

	view := game.NewConsoleView(os.Stdout, !config.UI.NoColor)
	g := client.New(config, console.Stdio(), store, view, logger)
	return g.Run()
}
