package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ivlev/slidenotes/internal/deck"
	"github.com/ivlev/slidenotes/internal/outline"
)

func TestPrint(t *testing.T) {
	slides := []deck.Slide{{
		Number:   1,
		FileName: "intro.png",
		Outline:  outline.Classify("SUMMARY\nfast\n- Item one"),
	}}

	var buf bytes.Buffer
	Print(&buf, slides)
	out := buf.String()

	for _, want := range []string{"Slide 1", "intro.png", "SUMMARY", "fast", "Item one", "•"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, nil)
	if !strings.Contains(buf.String(), "No Notes Yet") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestLineIndentsSubItems(t *testing.T) {
	got := Line(outline.ContentItem{Kind: outline.SubItem, Text: "detail"})
	if !strings.Contains(got, "    ") || !strings.Contains(got, "• detail") {
		t.Errorf("sub-item not indented: %q", got)
	}
}
