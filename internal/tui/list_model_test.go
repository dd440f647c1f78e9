package tui_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paulo20Lima/esportes/internal/catalog"
	"github.com/Paulo20Lima/esportes/internal/tui"
)

func testSports() []catalog.Sport {
	return []catalog.Sport{
		{ID: 1, Name: "Futebol", Description: "O mais popular.", Image: "futebol.png", Popularity: 9.8},
		{ID: 2, Name: "Vôlei", Description: "Seis por equipe.", Image: "volei.png", Popularity: 8.7},
		{ID: 3, Name: "Basquete", Description: "Cesta a 3,05m.", Image: "basquete.png", Popularity: 7.9},
	}
}

func testDeps() tui.ListDeps {
	return tui.ListDeps{
		LoadCatalog:    func() ([]catalog.Sport, error) { return testSports(), nil },
		LoadLastViewed: func() (*catalog.Sport, error) { return nil, nil },
		SaveLastViewed: func(catalog.Sport) error { return nil },
		Logger:         zerolog.Nop(),
	}
}

func settle(t *testing.T, m tui.ListModel, catalogMsg tui.CatalogLoadedMsg, lastMsg tui.LastViewedLoadedMsg, catalogFirst bool) tui.ListModel {
	t.Helper()

	if catalogFirst {
		m, _ = m.Update(catalogMsg)
		m, _ = m.Update(lastMsg)
	} else {
		m, _ = m.Update(lastMsg)
		m, _ = m.Update(catalogMsg)
	}

	return m
}

func TestListModel_StaysLoadingUntilBothSettle(t *testing.T) {
	m := tui.NewListModel(testDeps())
	assert.Equal(t, tui.ListStateLoading, m.State())

	m, _ = m.Update(tui.CatalogLoadedMsg{Sports: testSports()})
	assert.Equal(t, tui.ListStateLoading, m.State(), "one settled load must not leave the loading state")

	m, _ = m.Update(tui.LastViewedLoadedMsg{})
	assert.Equal(t, tui.ListStatePopulated, m.State())
}

func TestListModel_JoinOrderIndependence(t *testing.T) {
	for _, catalogFirst := range []bool{true, false} {
		m := settle(t, tui.NewListModel(testDeps()),
			tui.CatalogLoadedMsg{Sports: testSports()},
			tui.LastViewedLoadedMsg{Sport: &catalog.Sport{ID: 2, Name: "Vôlei", Popularity: 8.7}},
			catalogFirst)

		assert.Equal(t, tui.ListStatePopulated, m.State())
		require.NotNil(t, m.LastViewed())
		assert.Equal(t, "Vôlei", m.LastViewed().Name)
	}
}

func TestListModel_CatalogFailureIsFatal(t *testing.T) {
	loadErr := errors.New("bundled catalog: failed to decode catalog JSON: unexpected end of JSON input")

	m := settle(t, tui.NewListModel(testDeps()),
		tui.CatalogLoadedMsg{Err: loadErr},
		tui.LastViewedLoadedMsg{Sport: &catalog.Sport{ID: 1, Name: "Futebol"}},
		true)

	assert.Equal(t, tui.ListStateError, m.State())
	// The underlying cause is shown verbatim.
	assert.Contains(t, m.View(), loadErr.Error())
}

func TestListModel_EmptyCatalog(t *testing.T) {
	m := settle(t, tui.NewListModel(testDeps()),
		tui.CatalogLoadedMsg{Sports: nil},
		tui.LastViewedLoadedMsg{},
		true)

	assert.Equal(t, tui.ListStateEmpty, m.State())
	assert.Contains(t, m.View(), "Nenhum esporte cadastrado")
}

func TestListModel_AbsentLastViewedIsNotAnError(t *testing.T) {
	m := settle(t, tui.NewListModel(testDeps()),
		tui.CatalogLoadedMsg{Sports: testSports()},
		tui.LastViewedLoadedMsg{Sport: nil},
		true)

	assert.Equal(t, tui.ListStatePopulated, m.State())
	assert.Nil(t, m.LastViewed())
	assert.NotContains(t, m.View(), "Último visto", "the section content is suppressed when no value exists")
}

func TestListModel_LastViewedLoadFailureIsAbsorbed(t *testing.T) {
	deps := testDeps()
	deps.LoadLastViewed = func() (*catalog.Sport, error) {
		return nil, errors.New("disk on fire")
	}

	m := tui.NewListModel(deps)

	// Run the startup commands; the failure must already be absorbed in
	// the resulting message, never surfaced as an error.
	batch, ok := m.Init()().(tea.BatchMsg)
	require.True(t, ok)

	var lastMsg *tui.LastViewedLoadedMsg
	var catalogMsg *tui.CatalogLoadedMsg
	for _, cmd := range batch {
		switch msg := cmd().(type) {
		case tui.LastViewedLoadedMsg:
			lastMsg = &msg
		case tui.CatalogLoadedMsg:
			catalogMsg = &msg
		}
	}

	require.NotNil(t, lastMsg)
	assert.Nil(t, lastMsg.Sport, "load failure degrades to no value")
	require.NotNil(t, catalogMsg)
	require.NoError(t, catalogMsg.Err)

	m, _ = m.Update(*catalogMsg)
	m, _ = m.Update(*lastMsg)
	assert.Equal(t, tui.ListStatePopulated, m.State())
}

func TestListModel_Navigation(t *testing.T) {
	m := settle(t, tui.NewListModel(testDeps()),
		tui.CatalogLoadedMsg{Sports: testSports()},
		tui.LastViewedLoadedMsg{},
		true)

	assert.Equal(t, 0, m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, m.Selected())

	// Capped at the last row.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, m.Selected())
}

func TestListModel_SelectPersistsAndNavigates(t *testing.T) {
	var saved []catalog.Sport
	deps := testDeps()
	deps.SaveLastViewed = func(s catalog.Sport) error {
		saved = append(saved, s)
		return nil
	}

	m := settle(t, tui.NewListModel(deps),
		tui.CatalogLoadedMsg{Sports: testSports()},
		tui.LastViewedLoadedMsg{},
		true)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	// (a) save was called with the selected record.
	require.Len(t, saved, 1)
	assert.Equal(t, "Vôlei", saved[0].Name)

	// (b) the displayed last-viewed section updates immediately, no re-fetch.
	require.NotNil(t, m.LastViewed())
	assert.Equal(t, "Vôlei", m.LastViewed().Name)
	assert.Contains(t, m.View(), "Último visto: Vôlei")

	// (c) the parent is told to navigate with the full record as argument.
	msg := cmd()
	selected, ok := msg.(tui.SportSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "Vôlei", selected.Sport.Name)
	assert.Equal(t, 8.7, selected.Sport.Popularity)
}

func TestListModel_SaveFailureDoesNotBlockNavigation(t *testing.T) {
	deps := testDeps()
	deps.SaveLastViewed = func(catalog.Sport) error {
		return errors.New("write failed")
	}

	m := settle(t, tui.NewListModel(deps),
		tui.CatalogLoadedMsg{Sports: testSports()},
		tui.LastViewedLoadedMsg{},
		true)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "navigation proceeds even if the save fails")
	require.NotNil(t, m.LastViewed())
	assert.Equal(t, "Futebol", m.LastViewed().Name)
}

func TestListModel_KeysIgnoredOutsidePopulated(t *testing.T) {
	m := tui.NewListModel(testDeps())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, tui.ListStateLoading, m.State())
}

func TestListModel_PopulatedView(t *testing.T) {
	m := settle(t, tui.NewListModel(testDeps()),
		tui.CatalogLoadedMsg{Sports: testSports()},
		tui.LastViewedLoadedMsg{},
		true)

	view := m.View()
	// Source order, not popularity order.
	assert.Contains(t, view, "Futebol")
	assert.Contains(t, view, "Vôlei")
	assert.Contains(t, view, "Basquete")
	assert.Contains(t, view, "9.8")
	assert.Contains(t, view, "3 esportes")
}
