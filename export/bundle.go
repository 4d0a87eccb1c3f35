package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexmullins/zip"
)

// Bundle archives files into a zip at dest, each under its base name. With a
// non-empty password every entry is AES-256 encrypted.
func Bundle(dest string, files []string, password string, overwrite bool) error {
	return WriteFile(dest, overwrite, func(w io.Writer) error {
		zipWriter := zip.NewWriter(w)
		for _, name := range files {
			if err := addToBundle(zipWriter, name, password); err != nil {
				return err
			}
		}
		if err := zipWriter.Close(); err != nil {
			return fmt.Errorf("could not finish archive: %w", err)
		}
		return nil
	})
}

func addToBundle(zipWriter *zip.Writer, src, password string) error {
	inFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open source file %q: %w", src, err)
	}
	defer func() {
		if closeErr := inFile.Close(); closeErr != nil {
			slog.Error("could not close source file", "name", src, "error", closeErr)
		}
	}()

	name := filepath.Base(src)
	var entry io.Writer
	if password != "" {
		entry, err = zipWriter.Encrypt(name, password)
	} else {
		entry, err = zipWriter.Create(name)
	}
	if err != nil {
		return fmt.Errorf("could not create archive entry %q: %w", name, err)
	}

	if _, err = io.Copy(entry, inFile); err != nil {
		return fmt.Errorf("could not copy %q into archive: %w", src, err)
	}
	return nil
}
