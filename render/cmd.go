package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"stockicon/export"
	"stockicon/icon"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Size   int    `help:"Icon edge length in pixels" required:""`
	Output string `help:"Output file, or - for stdout. Defaults to icon<size>.<format> in the working folder" short:"o"`
	Format string `help:"Output format" enum:"png,ico,svg" default:"png"`
	Force  bool   `help:"Overwrite an existing output file" default:"false"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := icon.ValidateSize(c.Size); err != nil {
		return err
	}
	if c.Format == "ico" && c.Size > export.MaxICOSize {
		return fmt.Errorf("ICO icons are limited to %d pixels, got %d", export.MaxICOSize, c.Size)
	}

	if c.Output == "" {
		c.Output = fmt.Sprintf("icon%d.%s", c.Size, c.Format)
	}
	if c.Output != "-" {
		output, err := filepath.Abs(c.Output)
		if err != nil {
			return fmt.Errorf("invalid output path %q: %w", c.Output, err)
		}
		c.Output = output
	}

	return nil
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("size", c.Size, "format", c.Format)
	logger.Debug("rendering")

	encode, err := export.Encoder(c.Format, c.Size)
	if err != nil {
		return err
	}

	if c.Output == "-" {
		if err := encode(os.Stdout); err != nil {
			return fmt.Errorf("could not write to stdout: %w", err)
		}
		return nil
	}

	if err := export.WriteFile(c.Output, c.Force, encode); err != nil {
		return err
	}
	logger.Info("saved", "file", c.Output)
	return nil
}
