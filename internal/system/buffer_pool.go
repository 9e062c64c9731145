package system

import (
	"image"
	"sync"
)

// ImagePool reuses *image.RGBA buffers by pixel size. Slides of one deck
// usually share a size, so upscaling for OCR allocates once per worker.
type ImagePool struct {
	mu    sync.Mutex
	sizes map[image.Point]*sync.Pool
}

// NewImagePool returns an empty pool.
func NewImagePool() *ImagePool {
	return &ImagePool{sizes: make(map[image.Point]*sync.Pool)}
}

var upscalePool = NewImagePool()

// GetImage returns an *image.RGBA with the given bounds from the shared pool.
// Its pixels are not cleared; callers overwrite every pixel.
func GetImage(rect image.Rectangle) *image.RGBA {
	return upscalePool.Get(rect)
}

// PutImage hands img back to the shared pool.
func PutImage(img *image.RGBA) {
	upscalePool.Put(img)
}

func (p *ImagePool) forSize(size image.Point) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	sp, ok := p.sizes[size]
	if !ok {
		sp = &sync.Pool{
			New: func() any {
				return image.NewRGBA(image.Rectangle{Max: size})
			},
		}
		p.sizes[size] = sp
	}
	return sp
}

// Get returns a buffer of rect's size, rebased onto rect. Buffers are shared
// across origins since the pixel layout only depends on the size.
func (p *ImagePool) Get(rect image.Rectangle) *image.RGBA {
	img := p.forSize(rect.Size()).Get().(*image.RGBA)
	img.Rect = rect
	return img
}

// Put returns img to the pool. Empty images and sub-images are dropped.
func (p *ImagePool) Put(img *image.RGBA) {
	if img == nil || img.Rect.Empty() {
		return
	}
	size := img.Rect.Size()
	if img.Stride != 4*size.X || len(img.Pix) != img.Stride*size.Y {
		return
	}
	p.forSize(size).Put(img)
}
