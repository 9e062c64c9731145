package system

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ocrWorkerMemory is a rough resident size of one Tesseract client with a
// 300 DPI slide loaded.
const ocrWorkerMemory = 256 << 20

// FindLatestInput finds the most recently modified file in dir whose
// extension is one of exts.
func FindLatestInput(dir string, exts []string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !hasExtension(f.Name(), exts) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no slides or decks found in %s", dir)
	}

	return latestFile, nil
}

func hasExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// RecommendedWorkers sizes the OCR pool from the physical core count and the
// memory currently available, never exceeding jobs.
func RecommendedWorkers(jobs int) int {
	workers, err := cpu.Counts(false)
	if err != nil || workers <= 0 {
		workers = runtime.NumCPU()
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		byMemory := int(vm.Available / ocrWorkerMemory)
		if byMemory < 1 {
			byMemory = 1
		}
		if byMemory < workers {
			slog.Debug("limiting OCR workers by available memory",
				"available_mb", vm.Available>>20,
				"workers", byMemory,
			)
			workers = byMemory
		}
	}

	return clampWorkers(workers, jobs)
}

func clampWorkers(workers, jobs int) int {
	if workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
