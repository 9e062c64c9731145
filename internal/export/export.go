// Package export maps classified slide outlines to Markdown, plain text and
// clipboard text. The same kind-to-text table drives single outlines and whole
// batches, so every representation of a slide agrees.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ivlev/slidenotes/internal/deck"
	"github.com/ivlev/slidenotes/internal/outline"
)

// Format selects a text representation of an outline.
type Format int

const (
	Markdown Format = iota
	PlainText
	Clipboard
)

const ruleWidth = 50

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts the names used on the command line and in config files.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "md", "markdown":
		return Markdown, nil
	case "txt", "text", "plain":
		return PlainText, nil
	case "clipboard", "copy":
		return Clipboard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

func (f Format) String() string {
	switch f {
	case Markdown:
		return "markdown"
	case PlainText:
		return "text"
	case Clipboard:
		return "clipboard"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Extension returns the file extension for f, or "" when f is not written to a file.
func Extension(f Format) string {
	switch f {
	case Markdown:
		return ".md"
	case PlainText:
		return ".txt"
	default:
		return ""
	}
}

// Line renders a single item.
func Line(it outline.ContentItem, f Format) string {
	switch f {
	case Markdown:
		switch it.Kind {
		case outline.Title:
			return "### " + it.Text
		case outline.SubItem:
			return "  • " + it.Text
		default:
			return "- " + it.Text
		}
	case PlainText:
		switch it.Kind {
		case outline.Title:
			return "\n" + strings.ToUpper(it.Text) + "\n"
		case outline.SubItem:
			return "  • " + strings.TrimSpace(it.Text)
		default:
			return "• " + it.Text
		}
	default:
		switch it.Kind {
		case outline.Title:
			return it.Text
		case outline.SubItem:
			return "  • " + it.Text
		default:
			return "• " + it.Text
		}
	}
}

// Render renders one slide outline, one item per line.
func Render(o outline.Outline, f Format) string {
	var b strings.Builder
	writeOutline(&b, o, f)
	return b.String()
}

func writeOutline(b *strings.Builder, o outline.Outline, f Format) {
	for _, it := range o {
		b.WriteString(Line(it, f))
		b.WriteByte('\n')
		if f == Markdown && it.Kind == outline.Title {
			b.WriteByte('\n')
		}
	}
}

// Document renders a batch of slides with a header per slide and a separator
// after each one.
func Document(slides []deck.Slide, f Format) string {
	var b strings.Builder

	switch f {
	case Markdown:
		b.WriteString("# Slide Notes\n\n")
	case PlainText:
		b.WriteString("SLIDE NOTES\n")
		b.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")
	}

	for _, s := range slides {
		switch f {
		case Markdown:
			fmt.Fprintf(&b, "## Slide %d: %s\n\n", s.Number, s.FileName)
		case PlainText:
			fmt.Fprintf(&b, "SLIDE %d: %s\n", s.Number, s.FileName)
			b.WriteString(strings.Repeat("-", ruleWidth) + "\n\n")
		default:
			fmt.Fprintf(&b, "SLIDE %d: %s\n\n", s.Number, s.FileName)
		}

		writeOutline(&b, s.Outline, f)

		if f == PlainText {
			b.WriteString("\n" + strings.Repeat("=", ruleWidth) + "\n\n")
		} else {
			b.WriteString("\n---\n\n")
		}
	}

	return b.String()
}
