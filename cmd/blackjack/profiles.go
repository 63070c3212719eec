package main

import (
	"fmt"

	"github.com/cardtable/blackjack/internal/client"
	"github.com/cardtable/blackjack/internal/profile"
)

type ProfilesCmd struct {
	List   ProfilesListCmd   `cmd:"" help:"List saved profiles"`
	Delete ProfilesDeleteCmd `cmd:"" help:"Delete a saved profile"`
}

type ProfilesListCmd struct {
	Config  string `kong:"default='blackjack.hcl',help='Path to the HCL config file'"`
	DataDir string `kong:"help='Directory holding profile files (overrides config)'"`
}

func (c *ProfilesListCmd) Run() error {
	store, err := openStore(c.Config, c.DataDir)
	if err != nil {
		return err
	}

	names, err := store.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No profiles found.")
		return nil
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

type ProfilesDeleteCmd struct {
	Username string `kong:"arg,help='Profile to delete'"`
	Config   string `kong:"default='blackjack.hcl',help='Path to the HCL config file'"`
	DataDir  string `kong:"help='Directory holding profile files (overrides config)'"`
	Yes      bool   `kong:"help='Skip the confirmation prompt'"`
}

func (c *ProfilesDeleteCmd) Run() error {
	store, err := openStore(c.Config, c.DataDir)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("Delete profile %q? Re-run with --yes to confirm.\n", c.Username)
		return nil
	}

	removed, err := store.Delete(c.Username)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("no profile found for %q", c.Username)
	}

	fmt.Printf("Profile %q deleted.\n", c.Username)
	return nil
}

func openStore(configPath, dataDir string) (*profile.Store, error) {
	config, err := client.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		config.Storage.DataDir = dataDir
	}
	return profile.NewStore(config.Storage.DataDir)
}
