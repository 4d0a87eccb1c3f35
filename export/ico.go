package export

import (
	"fmt"
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"
)

// MaxICOSize is the largest edge an ICO directory entry can describe.
const MaxICOSize = 256

func ICO(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Dx() > MaxICOSize || b.Dy() > MaxICOSize {
		return fmt.Errorf("image %dx%d exceeds ICO limit of %d", b.Dx(), b.Dy(), MaxICOSize)
	}
	if err := ico.Encode(w, img); err != nil {
		return fmt.Errorf("could not encode ICO: %w", err)
	}
	return nil
}
