// Package cli wires the cobra commands: the interactive browser (default)
// and the headless catalog listing.
package cli

import (
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Paulo20Lima/esportes/internal/catalog"
	"github.com/Paulo20Lima/esportes/internal/config"
	"github.com/Paulo20Lima/esportes/internal/logging"
)

// Package-level state established by the root command's PersistentPreRunE.
//
//nolint:gochecknoglobals // Shared command state, set once per invocation.
var (
	logger     zerolog.Logger
	rootLogger zerolog.Logger
	cfg        *config.Config
	logCloser  io.Closer
)

// NewRootCmd creates the root cobra command. Running it without a
// subcommand opens the interactive browser.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "esportes [rota]",
		Short: "Terminal browser for a sports catalog",
		Long: "Esportes shows a catalog of sports bundled with the binary,\n" +
			"remembers the last one you opened, and lets you browse from\n" +
			"the list to a detail screen.",
		Version:      ver,
		Args:         cobra.MaximumNArgs(1),
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, ver)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return teardown()
		},
		RunE: runBrowse,
	}

	cmd.PersistentFlags().String("config", "", "config file path (default ~/.esportes/config.yaml)")
	cmd.PersistentFlags().String("data-dir", "", "data directory for the last-viewed store and logs")
	cmd.PersistentFlags().String("catalog", "", "catalog JSON file overriding the bundled one")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(newBrowseCmd(), newListCmd())

	return cmd
}

const rootCmdExample = `  # Browse the catalog interactively
  esportes

  # Same, spelled out
  esportes browse

  # Open a route directly
  esportes browse /

  # Print the catalog and exit
  esportes list --plain

  # Use your own catalog file
  esportes --catalog ./meus-esportes.json`

// setup loads config, applies flag overrides and initializes logging.
func setup(cmd *cobra.Command, ver string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return err
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	// Flags win over the config file.
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		loaded.DataDir = dir
		loaded.Logging.File = filepath.Join(dir, "esportes.log")
	}
	if cat, _ := cmd.Flags().GetString("catalog"); cat != "" {
		loaded.Catalog = cat
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loaded.Logging.Level = "debug"
	}

	if err := loaded.EnsureDataDir(); err != nil {
		return err
	}

	// The TUI owns the terminal, so logs always go to the file.
	base, closer, err := logging.New(logging.Options{
		Level: loaded.Logging.Level,
		File:  loaded.Logging.File,
	})
	if err != nil {
		return err
	}

	cfg = loaded
	rootLogger = base
	logCloser = closer
	logger = logging.ComponentLogger(base, "cli")

	logger.Info().Str("command", cmd.Name()).Str("version", ver).Msg("command started")

	return nil
}

func teardown() error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

// loadCatalog reads either the configured external catalog file or the
// bundled resource.
func loadCatalog(cfg *config.Config) ([]catalog.Sport, error) {
	if cfg.Catalog != "" {
		return catalog.LoadFile(cfg.Catalog)
	}
	return catalog.Load()
}
