package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/slidenotes/internal/config"
	"github.com/ivlev/slidenotes/internal/deck"
)

func TestWriteExports(t *testing.T) {
	dir := t.TempDir()
	notes := deck.New([]deck.Slide{deck.NewSlide(1, "intro.png", "intro.png", "SUMMARY\n- Item one")})

	cfg := config.Default()
	cfg.OutputDir = dir
	cfg.Formats = []string{"md", "TXT", "html", "yaml", "md", "markdown", "text", "yml", "pdf"}

	// aliases of one export collapse and pdf is unknown
	if got := writeExports(notes, cfg); got != 4 {
		t.Errorf("Expected 4 exports, got %d", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	exts := map[string]string{}
	for _, e := range entries {
		data, _ := os.ReadFile(filepath.Join(dir, e.Name()))
		exts[filepath.Ext(e.Name())] = string(data)
	}

	if !strings.Contains(exts[".md"], "### SUMMARY") {
		t.Errorf("markdown export = %q", exts[".md"])
	}
	if !strings.Contains(exts[".txt"], "SLIDE NOTES") {
		t.Errorf("text export = %q", exts[".txt"])
	}
	if !strings.Contains(exts[".html"], "<h3>SUMMARY</h3>") {
		t.Errorf("html export = %q", exts[".html"])
	}

	var deckPath string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".yaml" {
			deckPath = filepath.Join(dir, e.Name())
		}
	}
	loaded, err := loadDeck(deckPath, dir)
	if err != nil {
		t.Fatalf("loadDeck failed: %v", err)
	}
	if !loaded.Slides[0].Outline.Equal(notes.Slides[0].Outline) {
		t.Errorf("reloaded outline = %v", loaded.Slides[0].Outline)
	}

	latest, err := loadDeck("latest", dir)
	if err != nil {
		t.Fatalf("loadDeck(latest) failed: %v", err)
	}
	if len(latest.Slides) != 1 {
		t.Errorf("latest deck has %d slides", len(latest.Slides))
	}
}

func TestWriteExportsCountsFilesOnce(t *testing.T) {
	dir := t.TempDir()
	notes := deck.New([]deck.Slide{deck.NewSlide(1, "intro.png", "intro.png", "SUMMARY")})

	cfg := config.Default()
	cfg.OutputDir = dir
	cfg.Formats = []string{"md", "markdown", " MD "}

	if got := writeExports(notes, cfg); got != 1 {
		t.Errorf("Expected 1 export, got %d", got)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 file, got %d", len(entries))
	}
}
