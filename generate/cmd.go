package generate

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"

	"stockicon/config"
	"stockicon/export"
	"stockicon/icon"
	"stockicon/parallel"

	"github.com/alecthomas/kong"
)

const (
	icoName = "favicon.ico"
	svgName = "icon.svg"
)

type CLICmd struct {
	Out      string `help:"Destination folder for the icons" default:"${out_dir}" type:"path"`
	Sizes    []int  `help:"Icon sizes in pixels" default:"${sizes}"`
	ICO      bool   `name:"ico" help:"Also write favicon.ico from the largest size an ICO can hold"`
	SVG      bool   `name:"svg" help:"Also write a scalable icon.svg"`
	Zip      string `help:"Bundle every written file into this zip archive. Relative to the destination folder if not absolute"`
	Password string `help:"Encrypt the zip bundle. Defaults to STOCKICON_ZIP_PASSWORD"`
	Force    bool   `help:"Overwrite existing files" default:"false"`
	Workers  int    `help:"Concurrent renders, 0 for one per CPU" default:"${workers}"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no icon sizes given")
	}
	for i, size := range c.Sizes {
		if err := icon.ValidateSize(size); err != nil {
			return err
		}
		if slices.Contains(c.Sizes[:i], size) {
			return fmt.Errorf("duplicate icon size: %d", size)
		}
	}

	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}

	outDir, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Out, err)
	}
	c.Out = outDir

	if c.Zip != "" && !filepath.IsAbs(c.Zip) {
		c.Zip = filepath.Join(outDir, c.Zip)
	}
	if c.Password != "" && c.Zip == "" {
		return fmt.Errorf("a bundle password needs --zip")
	}

	return nil
}

func (c *CLICmd) Run(cfg *config.Config) error {
	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Out, err)
	}

	images := make([]*image.NRGBA, len(c.Sizes))
	written := make([]string, len(c.Sizes))
	var errCount atomic.Uint64

	parallel.Each(c.Workers, c.Sizes, func(i, size int) {
		logger := slog.Default().With("size", size)
		logger.Debug("rendering")

		img, err := icon.Render(size)
		if err != nil {
			errCount.Add(1)
			logger.Error("could not render icon", "error", err)
			return
		}
		images[i] = img

		dest := filepath.Join(c.Out, export.FileName(size))
		if err = export.WriteFile(dest, c.Force, func(w io.Writer) error {
			return export.PNG(w, img)
		}); err != nil {
			errCount.Add(1)
			logger.Error("could not save icon", "file", dest, "error", err)
			return
		}
		written[i] = dest
		logger.Info("saved", "file", dest)
	})

	files := slices.DeleteFunc(written, func(s string) bool { return s == "" })
	failed := errCount.Load()

	if c.ICO {
		if dest, err := c.writeICO(images); err != nil {
			failed++
			slog.Error("could not save ICO", "error", err)
		} else if dest != "" {
			files = append(files, dest)
		}
	}

	if c.SVG {
		dest := filepath.Join(c.Out, svgName)
		l := icon.NewLayout(slices.Max(c.Sizes))
		if err := export.WriteFile(dest, c.Force, func(w io.Writer) error {
			return export.SVG(w, l)
		}); err != nil {
			failed++
			slog.Error("could not save SVG", "file", dest, "error", err)
		} else {
			files = append(files, dest)
			slog.Info("saved", "file", dest)
		}
	}

	if c.Zip != "" {
		password := c.Password
		if password == "" {
			password = cfg.ZipPassword
		}
		if err := export.Bundle(c.Zip, files, password, c.Force); err != nil {
			failed++
			slog.Error("could not bundle icons", "file", c.Zip, "error", err)
		} else {
			slog.Info("bundled", "file", c.Zip, "entries", len(files), "encrypted", password != "")
		}
	}

	slog.Info("stats", "written", len(files), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("error processing %d icons", failed)
	}
	return nil
}

// writeICO stores the largest rendered image that fits the ICO format. It
// returns an empty path when no size qualifies.
func (c *CLICmd) writeICO(images []*image.NRGBA) (string, error) {
	var best *image.NRGBA
	for _, img := range images {
		if img == nil || img.Bounds().Dx() > export.MaxICOSize {
			continue
		}
		if best == nil || img.Bounds().Dx() > best.Bounds().Dx() {
			best = img
		}
	}
	if best == nil {
		slog.Warn("no icon size fits the ICO format", "max", export.MaxICOSize)
		return "", nil
	}

	dest := filepath.Join(c.Out, icoName)
	if err := export.WriteFile(dest, c.Force, func(w io.Writer) error {
		return export.ICO(w, best)
	}); err != nil {
		return "", err
	}
	slog.Info("saved", "file", dest, "size", best.Bounds().Dx())
	return dest, nil
}
