package export

import (
	"image"
	"image/png"
	"io"
	"sync"
)

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}

var pngEncoder = png.Encoder{
	CompressionLevel: png.BestCompression,
	BufferPool:       pngPool,
}

// PNG writes img losslessly. Safe for concurrent use.
func PNG(w io.Writer, img image.Image) error {
	return pngEncoder.Encode(w, img)
}
