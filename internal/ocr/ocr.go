// Package ocr is the boundary to the text recognition engine. Engines take one
// encoded slide image and return its plain text; everything downstream only
// ever sees that text.
package ocr

import (
	"context"
	"strconv"
)

// Input is a single slide image submitted for recognition.
type Input struct {
	// ID is echoed back in the Result.
	ID string
	// Image is PNG encoded.
	Image []byte
	// DPI is the effective resolution; zero means unknown.
	DPI int
	// Languages are Tesseract traineddata names such as "eng" or "deu".
	Languages []string
	// Metadata carries engine variables, for example the page segmentation mode.
	Metadata map[string]string
}

// Result is the recognised text of one Input.
type Result struct {
	InputID    string
	PlainText  string
	Confidence float64 // mean word confidence, 0..1
}

// Engine recognises text in slide images.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}

// InputOption adjusts an Input before it is submitted.
type InputOption func(*Input)

// WithLanguages sets the recognition languages.
func WithLanguages(langs ...string) InputOption {
	return func(in *Input) { in.Languages = append([]string(nil), langs...) }
}

// WithDPI sets the effective resolution of the image.
func WithDPI(dpi int) InputOption {
	return func(in *Input) { in.DPI = dpi }
}

// WithPageSegMode sets Tesseract's page segmentation mode. Zero leaves the engine default.
func WithPageSegMode(mode int) InputOption {
	return func(in *Input) {
		if mode <= 0 {
			return
		}
		if in.Metadata == nil {
			in.Metadata = make(map[string]string)
		}
		in.Metadata["tessedit_pageseg_mode"] = strconv.Itoa(mode)
	}
}

// NewInput builds an Input for an encoded image.
func NewInput(id string, image []byte, opts ...InputOption) Input {
	in := Input{ID: id, Image: image}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}
