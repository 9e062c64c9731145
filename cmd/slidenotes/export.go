package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ivlev/slidenotes/internal/config"
	"github.com/ivlev/slidenotes/internal/deck"
	"github.com/ivlev/slidenotes/internal/export"
)

// writeExports produces every requested export. A failed export is logged
// and does not stop the others. It returns the number of exports written.
func writeExports(notes *deck.Deck, cfg *config.Config) int {
	names := append([]string(nil), cfg.Formats...)
	if cfg.Copy {
		names = append(names, "clipboard")
	}

	written := 0
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		key := exportKey(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		path, err := writeExport(notes, cfg.OutputDir, name)
		if err != nil {
			slog.Error("export failed", "format", name, "error", err)
			continue
		}
		if path != "" {
			fmt.Printf("[+] Saved %s\n", path)
		}
		written++
	}
	return written
}

// exportKey maps aliases of one export to the same key, so "md,markdown"
// writes a single file.
func exportKey(name string) string {
	switch name {
	case "yaml", "yml", "deck":
		return "yaml"
	case "html":
		return name
	}
	if f, err := export.ParseFormat(name); err == nil {
		return f.String()
	}
	return name
}

func writeExport(notes *deck.Deck, dir, name string) (string, error) {
	switch name {
	case "yaml", "yml", "deck":
		path := deck.ExportPath(dir, ".yaml")
		return path, deck.Write(notes, path)

	case "html":
		data, err := export.HTML(notes.Slides)
		if err != nil {
			return "", err
		}
		path := deck.ExportPath(dir, ".html")
		return path, os.WriteFile(path, data, 0644)
	}

	format, err := export.ParseFormat(name)
	if err != nil {
		return "", err
	}

	if format == export.Clipboard {
		if err := export.CopyToClipboard(notes.Slides); err != nil {
			return "", err
		}
		fmt.Println("[+] Notes copied to clipboard")
		return "", nil
	}

	path := deck.ExportPath(dir, export.Extension(format))
	return path, os.WriteFile(path, []byte(export.Document(notes.Slides, format)), 0644)
}
