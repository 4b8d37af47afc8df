package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquechain/pkg/clique"
	"github.com/matzehuels/cliquechain/pkg/render"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command, an interactive list of all
// configurations for one n.
func (c *CLI) browseCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "browse <n>",
		Short: "Interactively browse configurations for n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("n must be an integer, got %q", args[0])
			}
			return c.runBrowse(cmd, n, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the result cache")

	return cmd
}

func (c *CLI) runBrowse(cmd *cobra.Command, n int, noCache bool) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	configs, _, err := runner.Enumerate(ctx, n)
	if err != nil {
		return err
	}

	model := NewConfigListModel(n, configs)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	_, err = program.Run()
	return err
}

// =============================================================================
// ConfigListModel - Interactive configuration browsing
// =============================================================================

// configEntry is one pre-rendered list row.
type configEntry struct {
	brackets   string
	cliques    string
	endingSize int
}

// ConfigListModel is the bubbletea model for browsing configurations.
type ConfigListModel struct {
	N       int
	Entries []configEntry
	Cursor  int
	Height  int
	Offset  int
}

// NewConfigListModel creates a list model over the configurations for n.
func NewConfigListModel(n int, configs []clique.Configuration) ConfigListModel {
	entries := make([]configEntry, len(configs))
	for i, cfg := range configs {
		entries[i] = configEntry{
			brackets:   render.Bracket(cfg, render.BracketOptions{}),
			cliques:    cfg.String(),
			endingSize: clique.EndingCliqueSize(cfg, n),
		}
	}
	return ConfigListModel{
		N:       n,
		Entries: entries,
		Height:  15,
	}
}

func (m ConfigListModel) Init() tea.Cmd {
	return nil
}

func (m ConfigListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Entries) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ConfigListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Configurations for n = %d", m.N)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-30s %s", cursor, e.brackets,
			listDimStyle.Render(fmt.Sprintf("ends in %d-clique", e.endingSize)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.Cursor < len(m.Entries) {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("  " + m.Entries[m.Cursor].cliques))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}
