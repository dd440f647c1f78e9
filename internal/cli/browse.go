package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Paulo20Lima/esportes/internal/catalog"
	"github.com/Paulo20Lima/esportes/internal/lastviewed"
	"github.com/Paulo20Lima/esportes/internal/logging"
	"github.com/Paulo20Lima/esportes/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [rota]",
		Short: "Open the interactive catalog browser",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrowse,
	}
}

// runBrowse opens the last-viewed store and hands control to the TUI. It
// also backs the root command, so `esportes` alone lands here.
func runBrowse(cmd *cobra.Command, args []string) error {
	store, err := lastviewed.Open(cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("failed to close last-viewed store")
		}
	}()

	routeName := tui.RouteList
	if len(args) == 1 {
		routeName = args[0]
	}

	deps := tui.ListDeps{
		LoadCatalog:    func() ([]catalog.Sport, error) { return loadCatalog(cfg) },
		LoadLastViewed: store.Load,
		SaveLastViewed: store.Save,
		Logger:         logging.ComponentLogger(rootLogger, "tui"),
	}

	logger.Debug().Str("route", routeName).Msg("starting browser")

	app := tui.NewAppAt(routeName, deps)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
