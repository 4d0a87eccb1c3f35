// Package export persists rendered icons: PNG, ICO and SVG encoders, atomic
// file writes and zip bundles.
package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

var ErrExists = errors.New("destination file already exists")

// fileMode is applied to written files; CreateTemp alone leaves them 0600.
var fileMode os.FileMode = 0o644

// EncodeFunc streams one encoded artefact to w.
type EncodeFunc func(w io.Writer) error

func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// WriteFile encodes into a temporary file next to dest and renames it into
// place once the data is synced, so dest is never left half written. An
// existing dest is only replaced when overwrite is set.
func WriteFile(dest string, overwrite bool, encode EncodeFunc) (err error) {
	if !overwrite {
		if err := checkDest(dest); err != nil {
			return err
		}
	}

	dir, name := filepath.Split(dest)
	if dir == "" {
		dir = "."
	}
	outFile, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", dest, err)
	}

	canRename := false
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", outFile.Name(), defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), dest); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", dest, defErr)
			}
		}

		if err != nil {
			if rmErr := os.Remove(outFile.Name()); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				slog.Error("could not remove temporary file", "name", outFile.Name(), "error", rmErr)
			}
		}
	}()

	if err = encode(outFile); err != nil {
		return fmt.Errorf("could not encode %q: %w", dest, err)
	}
	if err = outFile.Chmod(fileMode); err != nil {
		return fmt.Errorf("could not set mode of %q: %w", outFile.Name(), err)
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush temporary destination %q: %w", outFile.Name(), err)
	}

	canRename = true
	return nil
}

func checkDest(dest string) error {
	info, err := os.Stat(dest)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrExists, info.Name())
}
