package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportPath creates a timestamped export filename inside dir.
func ExportPath(dir, ext string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("slide-notes_%s%s", timestamp, ext))
}

// FindLatest finds the most recently modified deck file in dir.
func FindLatest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read deck directory: %w", err)
	}

	var latest string
	var latestTime time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		// files removed since ReadDir are skipped
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestTime) {
			latest = filepath.Join(dir, entry.Name())
			latestTime = info.ModTime()
		}
	}

	if latest == "" {
		return "", fmt.Errorf("no deck files found in %s", dir)
	}

	return latest, nil
}
