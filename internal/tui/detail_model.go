package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paulo20Lima/esportes/internal/catalog"
)

// BackToListMsg asks the parent model to return to the list screen.
type BackToListMsg struct{}

// detailHeaderHeight is the vertical space taken by the boxed header and
// the help line, reserved away from the description viewport.
const detailHeaderHeight = 8

// DetailModel is the Bubble Tea model for the detail screen. It receives a
// fully-populated record as its argument; nothing is re-fetched by id.
type DetailModel struct {
	sport  catalog.Sport
	vp     viewport.Model
	width  int
	height int
}

// NewDetailModel creates the detail screen for one sport record.
func NewDetailModel(sport catalog.Sport, width, height int) DetailModel {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	vp := viewport.New(width, max(height-detailHeaderHeight, 1))
	vp.SetContent(lipgloss.NewStyle().Width(width).Render(sport.Description))

	return DetailModel{
		sport:  sport,
		vp:     vp,
		width:  width,
		height: height,
	}
}

// Init is a no-op; the record arrived with the route.
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles back navigation and description scrolling.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-detailHeaderHeight, 1)
		m.vp.SetContent(lipgloss.NewStyle().Width(msg.Width).Render(m.sport.Description))
		return m, nil

	case tea.KeyMsg:
		switch msg.Type { //nolint:exhaustive // Only back keys matter here.
		case tea.KeyEsc, tea.KeyBackspace:
			return m, func() tea.Msg { return BackToListMsg{} }
		default:
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the detail screen.
func (m DetailModel) View() string {
	image := m.sport.Image
	if strings.TrimSpace(image) == "" {
		image = imagePlaceholder
	}

	header := detailBoxStyle.Render(strings.Join([]string{
		titleStyle.Render(m.sport.Name),
		fmt.Sprintf("Popularidade: %s", FormatPopularity(m.sport.Popularity)),
		dimStyle.Render(fmt.Sprintf("Imagem: %s", image)),
	}, "\n"))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc voltar • ↑/↓ rolar • q sair"))

	return b.String()
}

// Sport returns the record this screen was opened with.
func (m DetailModel) Sport() catalog.Sport {
	return m.sport
}
