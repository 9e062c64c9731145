package source

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.SetGray(x, h/2, color.Gray{Y: 255})
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestImageSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "02-body.png"), 40, 30)
	writePNG(t, filepath.Join(dir, "01-intro.png"), 20, 10)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a slide"), 0644)
	os.Mkdir(filepath.Join(dir, "sub.png"), 0755)

	src, err := NewImageSource(dir)
	if err != nil {
		t.Fatalf("NewImageSource failed: %v", err)
	}
	defer src.Close()

	if src.PageCount() != 2 {
		t.Fatalf("Expected 2 slides, got %d", src.PageCount())
	}
	if src.Name(0) != "01-intro.png" || src.Name(1) != "02-body.png" {
		t.Errorf("Slides not sorted by name: %s, %s", src.Name(0), src.Name(1))
	}

	w, h, err := src.GetPageDimensions(1)
	if err != nil || w != 40 || h != 30 {
		t.Errorf("GetPageDimensions = %v x %v, %v", w, h, err)
	}

	img, err := src.RenderPage(0, 300)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	if img.Bounds().Dx() != 20 {
		t.Errorf("Expected width 20, got %d", img.Bounds().Dx())
	}
}

func TestImageSourceErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewImageSource(dir); !errors.Is(err, ErrNoImages) {
		t.Errorf("Expected ErrNoImages, got %v", err)
	}

	txt := filepath.Join(dir, "a.txt")
	os.WriteFile(txt, []byte("x"), 0644)
	if _, err := NewImageSource(txt); err == nil {
		t.Error("Expected error for a non-image file")
	}

	broken := filepath.Join(dir, "broken.png")
	os.WriteFile(broken, []byte("not really a png"), 0644)
	src, err := NewImageSource(broken)
	if err != nil {
		t.Fatalf("NewImageSource failed: %v", err)
	}
	if _, err := src.RenderPage(0, 300); err == nil {
		t.Error("Expected decode error")
	}
}

func TestIsImage(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"slide.PNG", true},
		{"slide.jpeg", true},
		{"scan.tiff", true},
		{"photo.webp", true},
		{"deck.pdf", false},
		{"README", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImage(tt.name); got != tt.want {
				t.Errorf("IsImage(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	if !IsPDF("Deck.PDF") || IsPDF("deck.png") {
		t.Error("IsPDF mismatch")
	}
}
