package client

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// Config represents the complete game configuration
type Config struct {
	Storage StorageSettings
	Game    GameSettings
	UI      UISettings
}

// StorageSettings contains profile storage settings
type StorageSettings struct {
	DataDir string `hcl:"data_dir,optional"`
}

// GameSettings contains gameplay settings
type GameSettings struct {
	StartingBalance int `hcl:"starting_balance,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	NoColor bool `hcl:"no_color,optional"`
	Debug   bool `hcl:"debug,optional"`
}

// fileConfig mirrors Config for HCL decoding; every block is optional.
type fileConfig struct {
	Storage *StorageSettings `hcl:"storage,block"`
	Game    *GameSettings    `hcl:"game,block"`
	UI      *UISettings      `hcl:"ui,block"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageSettings{
			DataDir: ".",
		},
		Game: GameSettings{
			StartingBalance: 500,
		},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to
// defaults when the file does not exist. A .env file (if present) and
// BLACKJACK_* environment variables override file values.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(filename); err == nil {
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}

		var parsed fileConfig
		diags = gohcl.DecodeBody(file.Body, nil, &parsed)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}

		merge(config, &parsed)
	}

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()
	applyEnv(config)

	return config, nil
}

func merge(config *Config, parsed *fileConfig) {
	if parsed.Storage != nil && parsed.Storage.DataDir != "" {
		config.Storage.DataDir = parsed.Storage.DataDir
	}
	if parsed.Game != nil && parsed.Game.StartingBalance > 0 {
		config.Game.StartingBalance = parsed.Game.StartingBalance
	}
	if parsed.UI != nil {
		config.UI = *parsed.UI
	}
}

func applyEnv(config *Config) {
	if dir := os.Getenv("BLACKJACK_DATA_DIR"); dir != "" {
		config.Storage.DataDir = dir
	}
	if v := os.Getenv("BLACKJACK_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			config.UI.Debug = debug
		}
	}
	if v := os.Getenv("BLACKJACK_STARTING_BALANCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.Game.StartingBalance = n
		}
	}
}
