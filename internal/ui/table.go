package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nevereverland/voxsync/internal/asset"
)

// Table styles. Immutable after init.
var (
	styleHeader   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	styleCategory = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleDim      = lipgloss.NewStyle().Faint(true)
)

// Column widths for the asset table. The tags column takes the remainder.
const (
	colWidthID   = 24
	colWidthName = 26
	colWidthSize = 12
)

// RenderAssetTable writes a per-category table of descriptors to w in fixed
// category order, skipping empty categories. Styling degrades to plain text
// when the terminal reports no color support.
func RenderAssetTable(w io.Writer, perCategory map[asset.Category][]asset.Descriptor) {
	plain := termenv.EnvColorProfile() == termenv.Ascii
	render := func(style lipgloss.Style, s string) string {
		if plain {
			return s
		}
		return style.Render(s)
	}

	header := fmt.Sprintf("%-*s %-*s %-*s %s", colWidthID, "ID", colWidthName, "NAME", colWidthSize, "SIZE", "TAGS")

	total := 0
	for _, category := range asset.Categories() {
		descriptors := perCategory[category]
		if len(descriptors) == 0 {
			continue
		}
		total += len(descriptors)

		fmt.Fprintf(w, "%s %s\n", render(styleCategory, string(category)), render(styleDim, fmt.Sprintf("(%d)", len(descriptors))))
		fmt.Fprintln(w, render(styleHeader, header))
		for _, d := range descriptors {
			fmt.Fprintf(w, "%-*s %-*s %-*s %s\n",
				colWidthID, d.ID,
				colWidthName, d.Name,
				colWidthSize, d.Size.String(),
				strings.Join(d.Tags, ", "))
		}
		fmt.Fprintln(w)
	}

	if total == 0 {
		fmt.Fprintln(w, render(styleDim, "no assets found"))
		return
	}
	fmt.Fprintf(w, "%s\n", render(styleDim, fmt.Sprintf("%d asset(s) total", total)))
}
