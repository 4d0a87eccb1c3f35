package export

import (
	"fmt"
	"io"

	"stockicon/icon"
)

// Formats lists the output formats accepted by Encoder.
var Formats = []string{"png", "ico", "svg"}

// Encoder renders the icon for size and returns a function writing it in the
// given format.
func Encoder(format string, size int) (EncodeFunc, error) {
	if err := icon.ValidateSize(size); err != nil {
		return nil, err
	}

	switch format {
	case "svg":
		l := icon.NewLayout(size)
		return func(w io.Writer) error { return SVG(w, l) }, nil
	case "png", "ico":
		if format == "ico" && size > MaxICOSize {
			return nil, fmt.Errorf("ICO icons are limited to %d pixels, got %d", MaxICOSize, size)
		}
		img, err := icon.Render(size)
		if err != nil {
			return nil, err
		}
		if format == "ico" {
			return func(w io.Writer) error { return ICO(w, img) }, nil
		}
		return func(w io.Writer) error { return PNG(w, img) }, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
