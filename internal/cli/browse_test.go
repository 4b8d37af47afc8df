package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/cliquechain/pkg/clique"
)

func browseModel(t *testing.T, n int) ConfigListModel {
	t.Helper()
	configs, err := clique.Generate(n)
	if err != nil {
		t.Fatalf("Generate(%d) error: %v", n, err)
	}
	return NewConfigListModel(n, configs)
}

func keyPress(key string) tea.KeyMsg {
	if len(key) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	switch key {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
}

func TestConfigListNavigation(t *testing.T) {
	m := browseModel(t, 3)
	if len(m.Entries) != 5 {
		t.Fatalf("entries = %d, want 5", len(m.Entries))
	}

	next, _ := m.Update(keyPress("down"))
	m = next.(ConfigListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyPress("up"))
	m = next.(ConfigListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.Cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(keyPress("up"))
	m = next.(ConfigListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.Cursor)
	}
}

func TestConfigListJumpKeys(t *testing.T) {
	m := browseModel(t, 4)

	next, _ := m.Update(keyPress("G"))
	m = next.(ConfigListModel)
	if m.Cursor != len(m.Entries)-1 {
		t.Errorf("cursor after G = %d, want %d", m.Cursor, len(m.Entries)-1)
	}

	next, _ = m.Update(keyPress("g"))
	m = next.(ConfigListModel)
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("cursor/offset after g = %d/%d, want 0/0", m.Cursor, m.Offset)
	}
}

func TestConfigListScrollOffset(t *testing.T) {
	m := browseModel(t, 5) // 41 entries, default height 15

	for i := 0; i < 20; i++ {
		next, _ := m.Update(keyPress("down"))
		m = next.(ConfigListModel)
	}
	if m.Cursor != 20 {
		t.Fatalf("cursor = %d, want 20", m.Cursor)
	}
	if m.Offset != m.Cursor-m.Height+1 {
		t.Errorf("offset = %d, want %d", m.Offset, m.Cursor-m.Height+1)
	}
}

func TestConfigListQuit(t *testing.T) {
	m := browseModel(t, 2)

	_, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestConfigListView(t *testing.T) {
	m := browseModel(t, 3)

	view := m.View()
	for _, want := range []string{"Configurations for n = 3", "[1/5]", "ends in"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestConfigListWindowResize(t *testing.T) {
	m := browseModel(t, 3)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	m = next.(ConfigListModel)
	if m.Height != 5 {
		t.Errorf("height after small resize = %d, want floor of 5", m.Height)
	}
}
