// Package display prints slide outlines to a terminal. Styling follows the
// export mapping: titles as bold headings, items and prose as bullets,
// sub-items as indented small text.
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ivlev/slidenotes/internal/deck"
	"github.com/ivlev/slidenotes/internal/outline"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	fileStyle   = lipgloss.NewStyle().Faint(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	bulletStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	subStyle    = lipgloss.NewStyle().PaddingLeft(4).Faint(true)
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle  = lipgloss.NewStyle().Bold(true)
)

// Line renders one outline item with its terminal style.
func Line(it outline.ContentItem) string {
	switch it.Kind {
	case outline.Title:
		return titleStyle.Render(it.Text)
	case outline.SubItem:
		return subStyle.Render("• " + it.Text)
	default:
		return bulletStyle.Render("•") + " " + it.Text
	}
}

// Print writes every slide with a numbered header and its outline.
func Print(w io.Writer, slides []deck.Slide) {
	if len(slides) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("No Notes Yet"))
		fmt.Fprintln(w, "Process some slides to see notes here")
		return
	}

	for _, s := range slides {
		fmt.Fprintf(w, "%s  %s\n", headerStyle.Render(fmt.Sprintf("Slide %d", s.Number)), fileStyle.Render(s.FileName))
		for _, it := range s.Outline {
			fmt.Fprintln(w, Line(it))
		}
		fmt.Fprintln(w, ruleStyle.Render("──────────────────────────────────────────────────"))
	}
}
