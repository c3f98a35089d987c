package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectdrop/internal/config"
	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
	"selectdrop/internal/logic"
	"selectdrop/internal/ui/handlers"
)

var testCatalog = []domain.Option{
	{Label: "Javascript", Value: "javascript"},
	{Label: "Typescript", Value: "typescript"},
	{Label: "Nodejs", Value: "nodejs"},
	{Label: "PostgreSQL", Value: "postgresql"},
}

func newTestModel(t *testing.T, configure func(*config.SelectSettings)) (*Model, *logic.MemorySelectionStore) {
	t.Helper()

	cfg := config.DefaultConfig()
	if configure != nil {
		configure(&cfg.Select)
	}
	store := logic.NewMemorySelectionStore(nil)
	m := NewModel(eventbus.New(), cfg, store, testCatalog, "test")
	t.Cleanup(m.Close)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, store
}

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, runes(string(r)))
	}
}

// containsQuit runs cmd and any batched commands looking for a quit message
func containsQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if containsQuit(c) {
				return true
			}
		}
	}
	return false
}

func TestNewModelLoadsCatalog(t *testing.T) {
	m, store := newTestModel(t, nil)

	assert.Equal(t, len(testCatalog), m.state.CatalogCount)
	assert.Equal(t, "test", m.state.CatalogSource)
	assert.False(t, m.controller.IsOpen())
	assert.Empty(t, store.Get())

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Pick your item")
	assert.NotContains(t, out, "Typescript", "panel is closed")
}

func TestPickSingleClosesPanel(t *testing.T) {
	m, store := newTestModel(t, nil)

	press(m, keyType(tea.KeyEnter))
	require.True(t, m.controller.IsOpen())
	assert.Contains(t, ansi.Strip(m.View()), "Typescript")

	press(m, keyType(tea.KeyDown), keyType(tea.KeyEnter))

	assert.Equal(t, []string{"typescript"}, domain.Values(store.Get()))
	assert.False(t, m.controller.IsOpen())
	assert.Equal(t, "closed", m.inputHandler.ModeName())
	assert.Contains(t, m.state.StatusMessage, "Selected")

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Typescript")
	assert.NotContains(t, out, "Pick your item")
}

func TestTriggerTogglesPanel(t *testing.T) {
	m, store := newTestModel(t, nil)

	press(m, keyType(tea.KeySpace))
	require.True(t, m.controller.IsOpen())
	assert.Equal(t, "open", m.inputHandler.ModeName())

	press(m, keyType(tea.KeySpace))
	assert.False(t, m.controller.IsOpen())
	assert.Equal(t, "closed", m.inputHandler.ModeName())
	assert.Empty(t, store.Get(), "toggling never picks")
}

func TestPickReplacesSingleSelection(t *testing.T) {
	m, store := newTestModel(t, nil)

	press(m, keyType(tea.KeyEnter), keyType(tea.KeyEnter))
	require.Equal(t, []string{"javascript"}, domain.Values(store.Get()))

	press(m, keyType(tea.KeyEnter), keyType(tea.KeyEnd), keyType(tea.KeyEnter))
	assert.Equal(t, []string{"postgresql"}, domain.Values(store.Get()))
}

func TestSearchFiltersAndPicks(t *testing.T) {
	m, store := newTestModel(t, nil)

	press(m, keyType(tea.KeyEnter), runes("/"))
	require.Equal(t, "search", m.inputHandler.ModeName())

	typeText(m, "js")
	assert.Equal(t, "js", m.controller.Query())
	assert.Equal(t, 1, m.navigator.TotalItems())
	assert.Contains(t, ansi.Strip(m.View()), "Nodejs")

	press(m, keyType(tea.KeyEnter))
	assert.Equal(t, "open", m.inputHandler.ModeName())
	assert.Equal(t, "js", m.controller.Query(), "submitting keeps the query")

	press(m, keyType(tea.KeyEnter))
	assert.Equal(t, []string{"nodejs"}, domain.Values(store.Get()))
}

func TestSearchWithNoMatches(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, keyType(tea.KeyEnter), runes("/"))
	typeText(m, "zzz")

	assert.Equal(t, 0, m.navigator.TotalItems())
	assert.Equal(t, -1, m.state.CursorIndex)
	assert.Contains(t, ansi.Strip(m.View()), `No options match "zzz"`)
}

func TestEscClearsQueryThenCloses(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, keyType(tea.KeyEnter), runes("/"))
	typeText(m, "type")
	press(m, keyType(tea.KeyEnter))
	require.Equal(t, "type", m.controller.Query())

	press(m, keyType(tea.KeyEsc))
	assert.Empty(t, m.controller.Query())
	assert.True(t, m.controller.IsOpen())
	assert.Equal(t, len(testCatalog), m.navigator.TotalItems())

	press(m, keyType(tea.KeyEsc))
	assert.False(t, m.controller.IsOpen())
}

func TestSearchDisabled(t *testing.T) {
	m, _ := newTestModel(t, func(s *config.SelectSettings) { s.WithSearch = false })

	press(m, keyType(tea.KeyEnter), runes("/"))
	assert.Equal(t, "open", m.inputHandler.ModeName())
	assert.Empty(t, m.controller.Query())
}

func TestMultiSelectBadges(t *testing.T) {
	m, store := newTestModel(t, func(s *config.SelectSettings) {
		s.Multiple = true
		s.ClosePolicy = config.CloseSingleOnly
	})

	press(m, keyType(tea.KeyEnter), keyType(tea.KeyEnter))
	require.True(t, m.controller.IsOpen(), "multi select stays open under single-only close policy")

	press(m, keyType(tea.KeyDown), keyType(tea.KeyEnter))
	assert.Equal(t, []string{"javascript", "typescript"}, domain.Values(store.Get()))

	// Picking an already selected option leaves the selection as it is
	press(m, keyType(tea.KeyEnter))
	assert.Equal(t, []string{"javascript", "typescript"}, domain.Values(store.Get()))

	press(m, keyType(tea.KeyEsc))
	require.False(t, m.controller.IsOpen())

	press(m, keyType(tea.KeyLeft))
	assert.Equal(t, 1, m.state.FocusedBadge)

	press(m, runes("x"))
	assert.Equal(t, []string{"javascript"}, domain.Values(store.Get()))
	assert.Equal(t, 0, m.state.FocusedBadge)
	assert.Contains(t, m.state.StatusMessage, "Removed")
}

func TestMultiSelectClosesUnderAlwaysPolicy(t *testing.T) {
	m, store := newTestModel(t, func(s *config.SelectSettings) { s.Multiple = true })

	press(m, keyType(tea.KeyEnter), keyType(tea.KeyEnter))

	assert.Len(t, store.Get(), 1)
	assert.False(t, m.controller.IsOpen())
}

func TestToggleModeClearsSelection(t *testing.T) {
	m, store := newTestModel(t, nil)

	press(m, keyType(tea.KeyEnter), keyType(tea.KeyEnter))
	require.Len(t, store.Get(), 1)

	press(m, runes("m"))
	assert.True(t, m.controller.Multiple())
	assert.Empty(t, store.Get())
	assert.Contains(t, m.state.StatusMessage, "Multi select")
}

func TestCatalogUpdateKeepsSelectionAndResetsQuery(t *testing.T) {
	m, store := newTestModel(t, nil)

	press(m, keyType(tea.KeyEnter), keyType(tea.KeyEnter))
	press(m, keyType(tea.KeyEnter), runes("/"))
	typeText(m, "post")

	m.Update(CatalogUpdatedMsg{
		Options: []domain.Option{
			{Label: "Go", Value: "go"},
			{Label: "Rust", Value: "rust"},
			{Label: "Go again", Value: "go"},
		},
		Source: "reloaded.toml",
	})

	assert.Empty(t, m.controller.Query())
	assert.Equal(t, 2, m.navigator.TotalItems())
	assert.Equal(t, 2, m.state.CatalogCount)
	assert.Equal(t, "reloaded.toml", m.state.CatalogSource)
	assert.Equal(t, []string{"javascript"}, domain.Values(store.Get()))
	assert.True(t, m.state.StatusIsError)
	assert.Contains(t, m.state.StatusMessage, "Dropped duplicate values: go")
}

func TestCatalogErrorSetsStatus(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(CatalogErrorMsg{Err: assert.AnError})

	assert.True(t, m.state.StatusIsError)
	assert.Contains(t, m.state.StatusMessage, "catalog reload failed")
}

func TestStaleStatusClearIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(CatalogErrorMsg{Err: assert.AnError})
	first := m.state.StatusSeq
	press(m, runes("m"))
	require.NotEqual(t, first, m.state.StatusSeq)

	m.Update(handlers.ClearStatusMsg{Seq: first})
	assert.NotEmpty(t, m.state.StatusMessage)

	m.Update(handlers.ClearStatusMsg{Seq: m.state.StatusSeq})
	assert.Empty(t, m.state.StatusMessage)
}

func TestHelpPopupWithoutProgram(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, runes("?"))
	require.True(t, m.state.ShowHelp)
	assert.Contains(t, ansi.Strip(m.View()), "selectdrop Help")

	// Keys other than the close keys are swallowed
	press(m, keyType(tea.KeyEnter))
	assert.False(t, m.controller.IsOpen())

	press(m, keyType(tea.KeyEsc))
	assert.False(t, m.state.ShowHelp)
}

func TestHelpPagerErrorFallsBackToPopup(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(helpPagerMsg{err: assert.AnError})
	assert.True(t, m.state.ShowHelp)
}

func TestPagerModeBlanksView(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())

	m.Update(resumeRenderingMsg{})
	assert.NotEmpty(t, m.View())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	assert.True(t, containsQuit(press(m, runes("q"))))
	assert.True(t, containsQuit(press(m, keyType(tea.KeyCtrlC))))
}

func TestViewportFollowsWindowHeight(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	assert.Equal(t, minPanelRows, m.state.ViewportHeight)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 100})
	assert.Equal(t, maxPanelRows, m.state.ViewportHeight)
}
