package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/manifest"
)

// inspectCommand creates the inspect command for summarizing a manifest.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [manifest.json|url]",
		Short: "Summarize a manifest's pages and zoom levels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printManifest(m)
			return nil
		},
	}
}

// printManifest renders the manifest summary and per-page table.
func printManifest(m *manifest.Manifest) {
	title := m.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Println(StyleTitle.Render(title))
	printKeyValue("Pages", fmt.Sprintf("%d", m.PageCount()))
	printKeyValue("Zoom levels", fmt.Sprintf("%d", m.ZoomLevels()))
	printKeyValue("Paged", fmt.Sprintf("%v", m.Paged))
	printNewline()

	if m.PageCount() == 0 {
		printInfo("Manifest has no pages")
		return
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, 0, len(m.Pages))
	for i, p := range m.Pages {
		base := p.Dims[0]
		paged := ""
		if p.Paged {
			paged = iconSuccess
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%g × %g", base.Width, base.Height),
			fmt.Sprintf("%d", len(p.Dims)),
			paged,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Page", "Size (zoom 0)", "Zooms", "Paged").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}
