package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/layout"
	"github.com/matzehuels/folio/pkg/manifest"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the preview command for browsing a layout interactively.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		zoom       int
		spreads    bool
		horizontal bool
	)

	cmd := &cobra.Command{
		Use:   "preview [manifest.json|url]",
		Short: "Browse a computed layout interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cfg := layout.Config{Zoom: zoom, Spreads: spreads}
			if horizontal {
				cfg.Orientation = layout.Horizontal
			}
			doc, err := layout.Compute(m, cfg)
			if err != nil {
				return err
			}

			model := NewGroupListModel(m, doc)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&zoom, "zoom", "z", 0, "zoom level to lay out")
	cmd.Flags().BoolVar(&spreads, "spreads", false, "pair pages into facing spreads (book mode)")
	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "scroll left to right instead of top to bottom")

	return cmd
}

// =============================================================================
// GroupListModel - Interactive layout group browser
// =============================================================================

// GroupListModel is the bubbletea model for browsing layout groups.
type GroupListModel struct {
	Manifest *manifest.Manifest
	Doc      *layout.Document
	Cursor   int
	Height   int
	Offset   int
}

// NewGroupListModel creates a new group list model.
func NewGroupListModel(m *manifest.Manifest, doc *layout.Document) GroupListModel {
	return GroupListModel{
		Manifest: m,
		Doc:      doc,
		Height:   15,
	}
}

func (m GroupListModel) Init() tea.Cmd {
	return nil
}

func (m GroupListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Doc.Groups)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g":
			m.Cursor, m.Offset = 0, 0
		case "G":
			m.Cursor = len(m.Doc.Groups) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m GroupListModel) View() string {
	var b strings.Builder

	title := m.Manifest.Title
	if title == "" {
		title = "Layout Preview"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("canvas %g × %g", m.Doc.Width, m.Doc.Height)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Doc.Groups) == 0 {
		b.WriteString(listDimStyle.Render("  (no groups)"))
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Doc.Groups) {
		end = len(m.Doc.Groups)
	}

	for i := m.Offset; i < end; i++ {
		pg := m.Doc.Groups[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		pages := make([]string, len(pg.Group.Pages))
		for j, p := range pg.Group.Pages {
			pages[j] = fmt.Sprintf("%d", p.Index)
		}

		line := fmt.Sprintf("%sgroup %-3d  pages %-8s  %g × %g at (%g, %g)",
			cursor, i, strings.Join(pages, ","),
			pg.Group.Width, pg.Group.Height, pg.Region.Left, pg.Region.Top)

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Doc.Groups))))

	return b.String()
}
