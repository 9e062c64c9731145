package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/ivlev/slidenotes/internal/deck"
	"github.com/ivlev/slidenotes/internal/outline"
)

var sample = outline.Outline{
	{Kind: outline.Title, Text: "Key Ideas"},
	{Kind: outline.Item, Text: "First point"},
	{Kind: outline.SubItem, Text: " detail "},
	{Kind: outline.Plain, Text: "A full sentence."},
}

func TestRender(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Markdown, "### Key Ideas\n\n- First point\n  •  detail \n- A full sentence.\n"},
		{PlainText, "\nKEY IDEAS\n\n• First point\n  • detail\n• A full sentence.\n"},
		{Clipboard, "Key Ideas\n• First point\n  •  detail \n• A full sentence.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := Render(sample, tt.format); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubItemKeepsMarker(t *testing.T) {
	o := outline.Classify("BENEFITS\nfast")
	for _, f := range []Format{Markdown, PlainText, Clipboard} {
		t.Run(f.String(), func(t *testing.T) {
			lines := strings.Split(Render(o, f), "\n")
			found := false
			for _, l := range lines {
				if l == "  • fast" {
					found = true
				}
				if l == "fast" {
					t.Errorf("sub-item rendered without marker: %q", lines)
				}
			}
			if !found {
				t.Errorf("no %q line in %q", "  • fast", lines)
			}
		})
	}
}

func TestMarkdownTitleLine(t *testing.T) {
	titles := []string{"Plain title", "**Bold** title", "# hashes #", "Ends with a period.", "- dash"}
	for _, title := range titles {
		o := outline.Outline{{Kind: outline.Title, Text: title}}
		lines := strings.Split(strings.TrimRight(Render(o, Markdown), "\n"), "\n")
		if len(lines) != 1 || lines[0] != "### "+title {
			t.Errorf("title %q rendered as %q", title, lines)
		}
	}
}

func TestDocument(t *testing.T) {
	slides := []deck.Slide{
		{Number: 1, FileName: "intro.png", Outline: outline.Classify("SUMMARY\n- Item one")},
		{Number: 3, FileName: "end.png", Outline: outline.Classify("")},
	}

	md := Document(slides, Markdown)
	wantMD := "# Slide Notes\n\n" +
		"## Slide 1: intro.png\n\n### SUMMARY\n\n- Item one\n\n---\n\n" +
		"## Slide 3: end.png\n\n- No text detected in this slide\n\n---\n\n"
	if md != wantMD {
		t.Errorf("Markdown document:\n%q\nwant:\n%q", md, wantMD)
	}

	txt := Document(slides, PlainText)
	for _, want := range []string{"SLIDE NOTES\n", "SLIDE 1: intro.png\n" + strings.Repeat("-", 50), "\nSUMMARY\n", "• Item one\n", strings.Repeat("=", 50)} {
		if !strings.Contains(txt, want) {
			t.Errorf("text document missing %q:\n%s", want, txt)
		}
	}

	clip := Document(slides, Clipboard)
	if !strings.HasPrefix(clip, "SLIDE 1: intro.png\n\nSUMMARY\n• Item one\n\n---\n\n") {
		t.Errorf("clipboard document = %q", clip)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"md", Markdown, false},
		{"Markdown", Markdown, false},
		{"txt", PlainText, false},
		{" text ", PlainText, false},
		{"clipboard", Clipboard, false},
		{"pdf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	if Extension(Markdown) != ".md" || Extension(PlainText) != ".txt" || Extension(Clipboard) != "" {
		t.Error("unexpected extensions")
	}
}

func TestHTML(t *testing.T) {
	slides := []deck.Slide{{Number: 1, FileName: "a.png", Outline: outline.Classify("SUMMARY\n- Item one")}}

	out, err := HTML(slides)
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	for _, want := range []string{"<h1>Slide Notes</h1>", "<h2>Slide 1: a.png</h2>", "<h3>SUMMARY</h3>", "<li>Item one</li>"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("HTML missing %q:\n%s", want, out)
		}
	}
}

func TestCopyToClipboard(t *testing.T) {
	var copied string
	orig := clipboardWriter
	clipboardWriter = func(text string) error {
		copied = text
		return nil
	}
	defer func() { clipboardWriter = orig }()

	slides := []deck.Slide{{Number: 1, FileName: "a.png", Outline: outline.Classify("- Item one")}}
	if err := CopyToClipboard(slides); err != nil {
		t.Fatalf("CopyToClipboard failed: %v", err)
	}
	if copied != Document(slides, Clipboard) {
		t.Errorf("copied %q", copied)
	}

	clipboardWriter = func(string) error { return errNoClipboard }
	if err := CopyToClipboard(slides); !errors.Is(err, errNoClipboard) {
		t.Errorf("expected wrapped clipboard error, got %v", err)
	}
}
