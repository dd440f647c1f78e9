package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Paulo20Lima/esportes/internal/catalog"
)

// ListState is the explicit state variant of the list screen.
type ListState int

const (
	// ListStateLoading holds until both startup loads have settled.
	ListStateLoading ListState = iota
	// ListStateError shows the catalog load failure. No retry exists.
	ListStateError
	// ListStateEmpty means the catalog loaded with zero records.
	ListStateEmpty
	// ListStatePopulated is the browsable list.
	ListStatePopulated
)

// CatalogLoadedMsg is sent when the catalog load settles.
type CatalogLoadedMsg struct {
	Sports []catalog.Sport
	Err    error
}

// LastViewedLoadedMsg is sent when the last-viewed load settles. A load
// failure has already been absorbed by then: Sport is simply nil.
type LastViewedLoadedMsg struct {
	Sport *catalog.Sport
}

// SportSelectedMsg is emitted for the parent model when the user opens a
// record. The record has already been persisted as last-viewed.
type SportSelectedMsg struct {
	Sport catalog.Sport
}

// ListDeps wires the list screen to the catalog loader and the last-viewed
// store. Functions rather than interfaces so tests can stub each load
// independently.
type ListDeps struct {
	LoadCatalog    func() ([]catalog.Sport, error)
	LoadLastViewed func() (*catalog.Sport, error)
	SaveLastViewed func(catalog.Sport) error
	Logger         zerolog.Logger
}

// ListModel is the Bubble Tea model for the list screen.
type ListModel struct {
	deps ListDeps

	state      ListState
	sports     []catalog.Sport
	lastViewed *catalog.Sport
	loadErr    error

	// The two startup loads settle independently; the screen leaves
	// Loading only after both have arrived, regardless of order.
	catalogSettled    bool
	lastViewedSettled bool

	selected int
	spin     spinner.Model
	width    int
	height   int
}

// NewListModel creates the list screen in its loading state.
func NewListModel(deps ListDeps) ListModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(spinnerStyle),
	)
	return ListModel{
		deps:   deps,
		state:  ListStateLoading,
		spin:   sp,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Init issues the catalog and last-viewed loads concurrently.
func (m ListModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCatalogCmd(), m.loadLastViewedCmd())
}

func (m ListModel) loadCatalogCmd() tea.Cmd {
	load := m.deps.LoadCatalog
	return func() tea.Msg {
		sports, err := load()
		return CatalogLoadedMsg{Sports: sports, Err: err}
	}
}

func (m ListModel) loadLastViewedCmd() tea.Cmd {
	load := m.deps.LoadLastViewed
	logger := m.deps.Logger
	return func() tea.Msg {
		sport, err := load()
		if err != nil {
			// Never surfaced: an unreadable slot degrades to "no value".
			logger.Warn().Err(err).Msg("last-viewed load failed, treating as absent")
			sport = nil
		}
		return LastViewedLoadedMsg{Sport: sport}
	}
}

// Update handles load results and keyboard navigation.
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state != ListStateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case CatalogLoadedMsg:
		m.sports = msg.Sports
		m.loadErr = msg.Err
		m.catalogSettled = true
		return m.settle(), nil

	case LastViewedLoadedMsg:
		m.lastViewed = msg.Sport
		m.lastViewedSettled = true
		return m.settle(), nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// settle moves out of Loading once both startup loads have arrived.
// Error wins over Empty wins over Populated; the last-viewed slot never
// contributes to the error state.
func (m ListModel) settle() ListModel {
	if !m.catalogSettled || !m.lastViewedSettled {
		return m
	}

	switch {
	case m.loadErr != nil:
		m.state = ListStateError
	case len(m.sports) == 0:
		m.state = ListStateEmpty
	default:
		m.state = ListStatePopulated
		if dups := catalog.DuplicateIDs(m.sports); len(dups) > 0 {
			m.deps.Logger.Debug().Ints("ids", dups).Msg("catalog contains duplicate ids")
		}
	}

	m.deps.Logger.Debug().
		Int("records", len(m.sports)).
		Bool("last_viewed", m.lastViewed != nil).
		Err(m.loadErr).
		Msg("list screen settled")

	return m
}

//nolint:exhaustive // Only navigation keys are relevant to the list screen.
func (m ListModel) handleKeyMsg(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	if m.state != ListStatePopulated {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyUp:
		if m.selected > 0 {
			m.selected--
		}

	case tea.KeyDown:
		if m.selected < len(m.sports)-1 {
			m.selected++
		}

	case tea.KeyHome:
		m.selected = 0

	case tea.KeyEnd:
		m.selected = len(m.sports) - 1

	case tea.KeyEnter:
		return m.openSelected()

	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				if m.selected < len(m.sports)-1 {
					m.selected++
				}
			case 'k':
				if m.selected > 0 {
					m.selected--
				}
			}
		}
	}

	return m, nil
}

// openSelected persists the selection as last-viewed, updates the displayed
// section immediately, and notifies the parent to navigate.
func (m ListModel) openSelected() (ListModel, tea.Cmd) {
	sport := m.sports[m.selected]

	if err := m.deps.SaveLastViewed(sport); err != nil {
		// Save has no failure path from the user's perspective.
		m.deps.Logger.Warn().Err(err).Int("id", sport.ID).
			Msg("failed to persist last-viewed sport")
	}
	m.lastViewed = &sport

	m.deps.Logger.Info().Int("id", sport.ID).Str("name", sport.Name).
		Msg("sport opened")

	return m, func() tea.Msg { return SportSelectedMsg{Sport: sport} }
}

// View renders the list screen for its current state variant.
func (m ListModel) View() string {
	switch m.state {
	case ListStateLoading:
		return fmt.Sprintf("\n %s Carregando esportes...\n", m.spin.View())

	case ListStateError:
		var b strings.Builder
		b.WriteString(errorStyle.Render("Erro ao carregar o catálogo de esportes"))
		b.WriteString("\n\n")
		b.WriteString(m.loadErr.Error())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q sair"))
		return b.String()

	case ListStateEmpty:
		return dimStyle.Render("Nenhum esporte cadastrado.") + "\n" +
			helpStyle.Render("q sair")

	case ListStatePopulated:
		return m.renderPopulated()
	}

	return ""
}

func (m ListModel) renderPopulated() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Esportes"))
	b.WriteString("\n")

	// The section content is suppressed while no last-viewed value exists.
	if m.lastViewed != nil {
		b.WriteString(lastViewedStyle.Render(LastViewedLabel(*m.lastViewed)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, sport := range m.sports {
		row := fmt.Sprintf("%s  %s", truncateName(sport.Name), dimStyle.Render(FormatPopularity(sport.Popularity)))
		if i == m.selected {
			b.WriteString(selectedRowStyle.Render("▸ " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"%s esportes • ↑/↓ navegar • enter abrir • q sair", FormatCount(len(m.sports)))))

	return b.String()
}

// State returns the current state variant.
func (m ListModel) State() ListState {
	return m.state
}

// Selected returns the selected row index.
func (m ListModel) Selected() int {
	return m.selected
}

// LastViewed returns the in-memory last-viewed record, if any.
func (m ListModel) LastViewed() *catalog.Sport {
	return m.lastViewed
}
