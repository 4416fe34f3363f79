package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/haivivi/raagas/pkg/cli"
	"github.com/haivivi/raagas/pkg/composition"
	"github.com/haivivi/raagas/pkg/render"
	"github.com/haivivi/raagas/pkg/swar"
)

const (
	appName = "raagas"

	// envConfigDir overrides os.UserConfigDir() as the parent of the
	// raagas config directory.
	envConfigDir = "RAAGAS_CONFIG_DIR"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	formatOutput string
	queryExpr    string
	outputFile   string

	// Global configuration (loaded at init time)
	globalConfig *cli.Config
)

var rootCmd = &cobra.Command{
	Use:   "raagas",
	Short: "Hindustani raag compositions and variations",
	Long: `raagas - explore, vary and play Hindustani raag compositions.

Compositions are YAML files holding the aroha, avroha, pakad, alankars
and swarmaalika of a raag in sargam notation. A few ship with the
binary; more are read from the compositions directory.

Configuration is stored in the OS config directory:
  macOS:   ~/Library/Application Support/raagas/config.yaml
  Linux:   ~/.config/raagas/config.yaml
  Windows: %AppData%/raagas/config.yaml

Examples:
  raagas list
  raagas show durga
  raagas parse "S R:G - P/M"
  raagas mutate durga --part pakad -n 4
  raagas play bhupali`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&configPath, "config", "", "config file (default: <config dir>/raagas/config.yaml)")
	pf.StringVar(&formatOutput, "format", "", "output format: table, yaml, json, msgpack, raw")
	pf.StringVarP(&queryExpr, "query", "q", "", "jq filter applied to structured output")
	pf.StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
}

// configLoadErr stores the error from loading the config for deferred
// reporting.
var configLoadErr error

func initConfig() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	globalConfig, configLoadErr = loadConfig()
	if configLoadErr != nil {
		slog.Debug("commands: config unavailable", "err", configLoadErr)
	}
}

func loadConfig() (*cli.Config, error) {
	path := configPath
	if path == "" {
		if dir := os.Getenv(envConfigDir); dir != "" {
			path = cli.PathsAt(appName, dir).ConfigFile()
		}
	}
	if path == "" {
		return cli.LoadConfig(appName)
	}
	return cli.LoadConfigWithPath(appName, path)
}

// GetConfig returns the global configuration.
func GetConfig() (*cli.Config, error) {
	if globalConfig == nil {
		if configLoadErr != nil {
			return nil, fmt.Errorf("config not available: %w", configLoadErr)
		}
		cfg, err := loadConfig()
		if err != nil {
			return nil, fmt.Errorf("config not available: %w", err)
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// compositionsDir returns the configured compositions directory, or the
// default one next to the config file.
func compositionsDir() string {
	cfg, err := GetConfig()
	if err != nil {
		return ""
	}
	if cfg.CompositionsDir != "" {
		return cfg.CompositionsDir
	}
	return filepath.Join(cfg.Dir(), "compositions")
}

func catalog() *composition.Catalog {
	return &composition.Catalog{Dir: compositionsDir(), Table: swar.NewTable()}
}

// tempo returns the flag tempo, else the configured one, else the default.
func tempo(bps float64) render.Tempo {
	if bps > 0 {
		return render.Tempo{BeatsPerSecond: bps}
	}
	if cfg, err := GetConfig(); err == nil && cfg.BeatsPerSecond > 0 {
		return render.Tempo{BeatsPerSecond: cfg.BeatsPerSecond}
	}
	return render.DefaultTempo()
}
