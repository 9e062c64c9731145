package deck

import (
	"time"

	"github.com/google/uuid"

	"github.com/ivlev/slidenotes/internal/outline"
)

// Version is written into every saved deck file.
const Version = "1.0"

// Deck is one processed batch of slides in upload order.
type Deck struct {
	Version   string    `yaml:"version"`
	CreatedAt time.Time `yaml:"created_at"`
	Slides    []Slide   `yaml:"slides"`
}

// Slide holds the OCR text of one input image and the outline derived from it.
// Slides are built once recognition has finished and are not modified afterwards.
type Slide struct {
	ID       string          `yaml:"id"`
	Number   int             `yaml:"number"` // 1-based position in the batch
	FileName string          `yaml:"file_name"`
	Image    string          `yaml:"image"`
	RawText  string          `yaml:"raw_text"`
	Outline  outline.Outline `yaml:"outline"`
}

// NewSlide classifies rawText and wraps the result with a fresh ID.
func NewSlide(number int, fileName, image, rawText string) Slide {
	return Slide{
		ID:       uuid.NewString(),
		Number:   number,
		FileName: fileName,
		Image:    image,
		RawText:  rawText,
		Outline:  outline.Classify(rawText),
	}
}

// New creates a deck holding the given slides.
func New(slides []Slide) *Deck {
	return &Deck{
		Version:   Version,
		CreatedAt: time.Now().UTC(),
		Slides:    slides,
	}
}

// Reclassify returns a copy of the deck with every outline rebuilt from the
// stored raw text. Saved decks from older classifier versions are refreshed this way.
func (d *Deck) Reclassify() *Deck {
	slides := make([]Slide, len(d.Slides))
	for i, s := range d.Slides {
		s.Outline = outline.Classify(s.RawText)
		slides[i] = s
	}
	return &Deck{Version: d.Version, CreatedAt: d.CreatedAt, Slides: slides}
}
