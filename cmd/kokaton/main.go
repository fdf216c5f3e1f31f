// kokaton is a terminal remake of Fight Kokaton: a bird dodges bouncing bombs
// and shoots them down with beams.
//
// Usage:
//
//	kokaton play             - Play in the terminal
//	kokaton record           - Run an unattended session and save frames as PNG
//	kokaton list             - List available games
//	kokaton config           - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--assets <dir>      - Load images from a directory instead of the built-in set
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Log destination for play (default: ~/.kokaton/kokaton.log)
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/assets"
	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/gfx"
	"github.com/vovakirdan/kokaton/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/kokaton/internal/games/kokaton"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagAssets   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kokaton",
	Short: "Fight Kokaton! - dodge the bombs, shoot them down",
	Long: `Fight Kokaton! puts a bird in a field of bouncing bombs.
Fly around, fire beams at the bombs and score a point for each one destroyed.
Touching a bomb ends the game.

Available commands:
  play     - Play in the terminal
  record   - Run an unattended session and save frames as PNG
  list     - Show all available games
  config   - Print the default configuration

Examples:
  kokaton play
  kokaton play --seed 42
  kokaton record --out ./frames --frames 300
  kokaton config > ~/.kokaton/configs/kokaton.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with image assets (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.kokaton/kokaton.log", "Log file used by play")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "kokaton",
		Level:           level,
	}), nil
}

// seed returns the --seed value, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// assetFS returns the image tree selected by --assets.
func assetFS() fs.FS {
	if flagAssets == "" {
		return assets.FS()
	}
	return os.DirFS(expandHome(flagAssets))
}

// newGame loads the config and creates the game with its assets.
func newGame(id string) (registry.Game, *config.KokatonConfig, error) {
	cfg, err := config.LoadKokaton(expandHome(flagConfig))
	if err != nil {
		return nil, nil, err
	}

	game, err := registry.Create(id, registry.Env{
		Config: &cfg,
		Images: gfx.NewLoader(assetFS()),
	})
	if err != nil {
		return nil, nil, err
	}
	return game, &cfg, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
