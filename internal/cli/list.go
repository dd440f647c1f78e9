package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Paulo20Lima/esportes/internal/catalog"
	"github.com/Paulo20Lima/esportes/internal/lastviewed"
	"github.com/Paulo20Lima/esportes/internal/tui"
)

//nolint:gochecknoglobals // Shared lipgloss styles are conventionally package globals.
var (
	listHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	listMarkerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	listDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func newListCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the sports catalog and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "force plain, unstyled output")

	return cmd
}

// runList loads the catalog and the last-viewed slot concurrently, joins
// both, and prints the catalog in source order. Catalog failure is fatal;
// a failed last-viewed load is absorbed like everywhere else.
func runList(cmd *cobra.Command, plain bool) error {
	store, err := lastviewed.Open(cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var (
		sports []catalog.Sport
		last   *catalog.Sport
	)

	g, _ := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var loadErr error
		sports, loadErr = loadCatalog(cfg)
		return loadErr
	})
	g.Go(func() error {
		s, loadErr := store.Load()
		if loadErr != nil {
			logger.Warn().Err(loadErr).Msg("last-viewed load failed, treating as absent")
			return nil
		}
		last = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if tui.DetectOutputMode(out, plain) == tui.OutputModeStyled {
		return renderStyledList(out, sports, last)
	}
	return renderPlainList(out, sports, last)
}

func renderPlainList(w io.Writer, sports []catalog.Sport, last *catalog.Sport) error {
	if len(sports) == 0 {
		_, err := fmt.Fprintln(w, "Nenhum esporte cadastrado.")
		return err
	}

	if last != nil {
		if _, err := fmt.Fprintf(w, "%s\n\n", tui.LastViewedLabel(*last)); err != nil {
			return err
		}
	}

	for _, s := range sports {
		marker := " "
		if last != nil && *last == s {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %3d  %-40s %6s\n",
			marker, s.ID, s.Name, tui.FormatPopularity(s.Popularity)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s esportes\n", tui.FormatCount(len(sports)))
	return err
}

func renderStyledList(w io.Writer, sports []catalog.Sport, last *catalog.Sport) error {
	if len(sports) == 0 {
		_, err := fmt.Fprintln(w, listDimStyle.Render("Nenhum esporte cadastrado."))
		return err
	}

	if _, err := fmt.Fprintln(w, listHeaderStyle.Render("Esportes")); err != nil {
		return err
	}
	if last != nil {
		if _, err := fmt.Fprintln(w, listMarkerStyle.Render(tui.LastViewedLabel(*last))); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, s := range sports {
		marker := " "
		if last != nil && *last == s {
			marker = listMarkerStyle.Render("*")
		}
		line := fmt.Sprintf("%s %3d  %-40s %s",
			marker, s.ID, s.Name, listDimStyle.Render(tui.FormatPopularity(s.Popularity)))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n",
		listDimStyle.Render(fmt.Sprintf("%s esportes", tui.FormatCount(len(sports)))))
	return err
}
