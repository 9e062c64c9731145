package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/ivlev/slidenotes/internal/system"
)

// EncodeImage PNG-encodes img for recognition. Images narrower than minWidth
// are upscaled first; Tesseract misses small glyphs on low resolution slides.
func EncodeImage(img image.Image, minWidth int) ([]byte, error) {
	src := img
	b := img.Bounds()

	if minWidth > 0 && b.Dx() > 0 && b.Dx() < minWidth {
		h := b.Dy() * minWidth / b.Dx()
		dst := system.GetImage(image.Rect(0, 0, minWidth, h))
		defer system.PutImage(dst)
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return nil, fmt.Errorf("encode slide image: %w", err)
	}
	return buf.Bytes(), nil
}
