// Package tui implements the interactive terminal application: a list
// screen over the sports catalog, a detail screen for one record, and a
// typed route union connecting them.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paulo20Lima/esportes/internal/catalog"
)

// App is the root Bubble Tea model. It owns the current route and both
// screen models; the list model outlives detail navigation so that
// returning restores it without a reload.
type App struct {
	route  Route
	list   ListModel
	detail DetailModel

	width  int
	height int
}

// NewApp creates the application at the list route.
func NewApp(deps ListDeps) App {
	return NewAppAt(RouteList, deps)
}

// NewAppAt creates the application at a named route. Unmatched names land
// on the fallback screen, which echoes the name and goes nowhere else.
func NewAppAt(routeName string, deps ListDeps) App {
	return App{
		route: ResolveRoute(routeName, nil),
		list:  NewListModel(deps),
	}
}

// Init starts the list screen's loads when the list route is active.
func (a App) Init() tea.Cmd {
	if _, ok := a.route.(ListRoute); ok {
		return a.list.Init()
	}
	return nil
}

// Update routes messages to the active screen and handles navigation.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		cmds = append(cmds, cmd)
		if _, ok := a.route.(DetailRoute); ok {
			a.detail, cmd = a.detail.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (msg.Type == tea.KeyRunes && string(msg.Runes) == "q") {
			return a, tea.Quit
		}
		return a.forward(msg)

	case SportSelectedMsg:
		// The record rides along as the route argument.
		a.route = ResolveRoute(RouteDetail, &msg.Sport)
		a.detail = NewDetailModel(msg.Sport, a.width, a.height)
		return a, nil

	case BackToListMsg:
		// Platform-level back: the list model is untouched, so its state
		// (selection, loaded records, last-viewed) is preserved.
		a.route = ListRoute{}
		return a, nil
	}

	return a.forward(msg)
}

// forward delivers a message to whichever screen the route points at. The
// fallback screen consumes nothing.
func (a App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.route.(type) {
	case ListRoute:
		a.list, cmd = a.list.Update(msg)
	case DetailRoute:
		a.detail, cmd = a.detail.Update(msg)
	case UnknownRoute:
		// Terminal state.
	}
	return a, cmd
}

// View renders the active route.
func (a App) View() string {
	switch route := a.route.(type) {
	case ListRoute:
		return a.list.View()
	case DetailRoute:
		return a.detail.View()
	case UnknownRoute:
		return renderUnknownRoute(route.Name)
	}
	return ""
}

// Route returns the active route.
func (a App) Route() Route {
	return a.route
}

// List returns the list screen model.
func (a App) List() ListModel {
	return a.list
}

// Detail returns the detail screen model. Only meaningful while the detail
// route is active.
func (a App) Detail() DetailModel {
	return a.detail
}

func renderUnknownRoute(name string) string {
	return errorStyle.Render("Rota desconhecida") + "\n\n" +
		fmt.Sprintf("Nenhuma tela corresponde a %q.", name) + "\n" +
		helpStyle.Render("q sair")
}

// LastViewedLabel renders the last-viewed summary used outside the TUI as
// well (the headless list command reuses it).
func LastViewedLabel(sport catalog.Sport) string {
	return fmt.Sprintf("Último visto: %s (Popularidade: %s)",
		truncateName(sport.Name), FormatPopularity(sport.Popularity))
}
