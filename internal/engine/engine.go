package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/slidenotes/internal/config"
	"github.com/ivlev/slidenotes/internal/deck"
	"github.com/ivlev/slidenotes/internal/ocr"
	"github.com/ivlev/slidenotes/internal/source"
	"github.com/ivlev/slidenotes/internal/system"
)

var (
	ErrNoSlides        = errors.New("source contains no slides")
	ErrAllSlidesFailed = errors.New("no slide could be processed")
)

// Progress is called after each slide finishes, successfully or not.
type Progress func(done, total int, name string, err error)

type NotesProject struct {
	Config   *config.Config
	Source   source.Source
	Engine   ocr.Engine
	Progress Progress
}

func NewNotesProject(cfg *config.Config, src source.Source, eng ocr.Engine) *NotesProject {
	return &NotesProject{
		Config: cfg,
		Source: src,
		Engine: eng,
		Progress: func(done, total int, name string, err error) {
			if err == nil {
				fmt.Printf("[>] Ready: %d/%d %s\n", done, total, name)
			}
		},
	}
}

// Run recognises and classifies every slide of the source. A slide that fails
// to render or recognise is logged and left out; the rest of the batch goes
// on. Slides keep their 1-based position in the source as their number.
func (p *NotesProject) Run(ctx context.Context) (*deck.Deck, error) {
	startTime := time.Now()

	pageCount := p.Source.PageCount()
	if pageCount == 0 {
		return nil, ErrNoSlides
	}

	workers := p.Config.Workers
	if workers <= 0 {
		workers = system.RecommendedWorkers(pageCount)
	}

	slog.Info("processing slides",
		"slides", pageCount,
		"workers", workers,
		"engine", p.Engine.Name(),
		"languages", p.Config.Languages,
	)

	results := make([]*deck.Slide, pageCount)
	var done atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < pageCount; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			name := p.Source.Name(i)
			slide, err := p.processSlide(gctx, i)
			if err != nil {
				slog.Error("slide failed, continuing with the rest",
					"slide", i+1,
					"file", name,
					"error", err,
				)
			} else {
				results[i] = slide
			}
			if p.Progress != nil {
				p.Progress(int(done.Add(1)), pageCount, name, err)
			}
			// cancellation stops the batch; slide errors never do
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slides := make([]deck.Slide, 0, pageCount)
	for _, s := range results {
		if s != nil {
			slides = append(slides, *s)
		}
	}
	if len(slides) == 0 {
		return nil, ErrAllSlidesFailed
	}

	slog.Info("slides processed",
		"succeeded", len(slides),
		"failed", pageCount-len(slides),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	return deck.New(slides), nil
}

func (p *NotesProject) processSlide(ctx context.Context, index int) (*deck.Slide, error) {
	name := p.Source.Name(index)

	img, err := p.Source.RenderPage(index, p.Config.DPI)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	data, err := ocr.EncodeImage(img, p.Config.MinWidth)
	if err != nil {
		return nil, err
	}

	in := ocr.NewInput(fmt.Sprintf("slide-%d", index+1), data,
		ocr.WithLanguages(p.Config.Languages...),
		ocr.WithDPI(p.Config.DPI),
		ocr.WithPageSegMode(p.Config.PSM),
	)

	res, err := p.Engine.Recognize(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("ocr: %w", err)
	}

	slog.Debug("slide recognised",
		"file", name,
		"chars", len(res.PlainText),
		"confidence", res.Confidence,
	)

	slide := deck.NewSlide(index+1, name, name, res.PlainText)
	return &slide, nil
}
