package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/ivlev/slidenotes/internal/config"
	"github.com/ivlev/slidenotes/internal/deck"
	"github.com/ivlev/slidenotes/internal/display"
	"github.com/ivlev/slidenotes/internal/engine"
	"github.com/ivlev/slidenotes/internal/ocr/tesseract"
	"github.com/ivlev/slidenotes/internal/source"
	"github.com/ivlev/slidenotes/internal/system"
)

const inputDir = "input/slides"

func main() {
	configPtr := flag.String("config", "", "Path to a YAML config file")
	inputPtr := flag.String("input", "", "Slide image, directory of images or PDF deck (default: latest PDF or the images in input/slides/)")
	outputPtr := flag.String("output", "output", "Directory for exported notes")
	formatPtr := flag.String("format", "md", "Comma separated exports: md, txt, html, yaml, clipboard")
	langPtr := flag.String("lang", "eng", "Comma separated Tesseract languages")
	dpiPtr := flag.Int("dpi", 300, "DPI for rasterising PDF pages")
	psmPtr := flag.Int("psm", 0, "Tesseract page segmentation mode (0 keeps the engine default)")
	workersPtr := flag.Int("workers", 0, "OCR workers (0 sizes the pool from CPU and memory)")
	minWidthPtr := flag.Int("min-width", 1600, "Upscale narrower slides to this width before OCR")
	deckPtr := flag.String("deck", "", "Re-export a saved YAML deck without running OCR (\"latest\" picks the newest in -output)")
	showPtr := flag.Bool("show", true, "Print the notes to the terminal")
	copyPtr := flag.Bool("copy", false, "Copy the notes to the clipboard")
	verbosePtr := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbosePtr {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configPtr != "" {
		loaded, err := config.Load(*configPtr)
		if err != nil {
			log.Fatalf("[-] Config error: %v", err)
		}
		cfg = loaded
	}

	// flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = *inputPtr
		case "output":
			cfg.OutputDir = *outputPtr
		case "format":
			cfg.Formats = config.SplitList(*formatPtr)
		case "lang":
			cfg.Languages = config.SplitList(*langPtr)
		case "dpi":
			cfg.DPI = *dpiPtr
		case "psm":
			cfg.PSM = *psmPtr
		case "workers":
			cfg.Workers = *workersPtr
		case "min-width":
			cfg.MinWidth = *minWidthPtr
		case "deck":
			cfg.DeckPath = *deckPtr
		case "show":
			cfg.Show = *showPtr
		case "copy":
			cfg.Copy = *copyPtr
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var notes *deck.Deck
	var err error
	if cfg.DeckPath != "" {
		notes, err = loadDeck(cfg.DeckPath, cfg.OutputDir)
	} else {
		notes, err = recognize(ctx, cfg)
	}
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	if cfg.Show {
		display.Print(os.Stdout, notes.Slides)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalf("[-] Cannot create output directory: %v", err)
	}
	written := writeExports(notes, cfg)

	fmt.Printf("[+++] Done! %d slide(s), %d export(s) in %s\n", len(notes.Slides), written, cfg.OutputDir)
}

func loadDeck(path, outputDir string) (*deck.Deck, error) {
	if path == "latest" {
		latest, err := deck.FindLatest(outputDir)
		if err != nil {
			return nil, err
		}
		path = latest
	}

	d, err := deck.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	fmt.Printf("[*] Loaded deck: %s (%d slides)\n", path, len(d.Slides))
	return d.Reclassify(), nil
}

func recognize(ctx context.Context, cfg *config.Config) (*deck.Deck, error) {
	inputPath := cfg.InputPath
	if inputPath == "" {
		inputPath = inputDir
		if latest, err := system.FindLatestInput(inputDir, []string{".pdf"}); err == nil {
			inputPath = latest
		}
		fmt.Printf("[*] Selected input: %s\n", inputPath)
	}

	src, err := source.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	fmt.Println("--- [SLIDE NOTES] ---")
	fmt.Printf("[*] Source: %s | Slides: %d\n", inputPath, src.PageCount())
	if w, h, err := src.GetPageDimensions(0); err == nil {
		fmt.Printf("[*] First slide: %.0fx%.0f\n", w, h)
	}
	fmt.Printf("[*] OCR: tesseract %s | Languages: %s | CPU: %d\n",
		tesseract.Version(), strings.Join(cfg.Languages, "+"), runtime.NumCPU())
	fmt.Println("---------------------")

	project := engine.NewNotesProject(cfg, src, tesseract.New())
	return project.Run(ctx)
}
