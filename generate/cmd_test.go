package generate

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"stockicon/config"
	"stockicon/export"
	"stockicon/icon"

	"github.com/alexmullins/zip"
)

func newCmd(t *testing.T, c CLICmd) *CLICmd {
	t.Helper()
	if err := c.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return &c
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CLICmd
		wantErr bool
	}{
		{"defaults", CLICmd{Out: "icons", Sizes: []int{16, 48, 128}}, false},
		{"no sizes", CLICmd{Out: "icons"}, true},
		{"zero size", CLICmd{Out: "icons", Sizes: []int{16, 0}}, true},
		{"too large", CLICmd{Out: "icons", Sizes: []int{icon.MaxSize + 1}}, true},
		{"duplicate", CLICmd{Out: "icons", Sizes: []int{16, 48, 16}}, true},
		{"negative workers", CLICmd{Out: "icons", Sizes: []int{16}, Workers: -2}, true},
		{"password without zip", CLICmd{Out: "icons", Sizes: []int{16}, Password: "x"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate(nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateResolvesPaths(t *testing.T) {
	c := newCmd(t, CLICmd{Out: "icons", Sizes: []int{16}, Zip: "bundle.zip"})
	if !filepath.IsAbs(c.Out) {
		t.Errorf("Out = %q, want absolute", c.Out)
	}
	if c.Zip != filepath.Join(c.Out, "bundle.zip") {
		t.Errorf("Zip = %q, want inside %q", c.Zip, c.Out)
	}
}

func TestRunWritesIconSet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public", "icons")
	c := newCmd(t, CLICmd{Out: out, Sizes: []int{16, 48, 128}, Workers: 2})

	if err := c.Run(&config.Config{}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, size := range c.Sizes {
		path := filepath.Join(out, export.FileName(size))
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		want, _ := icon.Render(size)
		got, ok := img.(*image.NRGBA)
		if !ok || !bytes.Equal(got.Pix, want.Pix) {
			t.Errorf("%s does not hold the rendered icon", path)
		}
	}
}

func TestRunRefusesOverwrite(t *testing.T) {
	out := t.TempDir()
	c := newCmd(t, CLICmd{Out: out, Sizes: []int{16, 48}, SVG: true})
	if err := c.Run(&config.Config{}); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	if err := c.Run(&config.Config{}); err == nil || err.Error() != "error processing 3 icons" {
		t.Errorf("second Run error = %v, want three failures", err)
	}

	c.Force = true
	if err := c.Run(&config.Config{}); err != nil {
		t.Errorf("Run with --force: %v", err)
	}
}

func TestRunExtras(t *testing.T) {
	out := t.TempDir()
	c := newCmd(t, CLICmd{
		Out:   out,
		Sizes: []int{16, 48, 512},
		ICO:   true,
		SVG:   true,
		Zip:   "icons.zip",
	})

	if err := c.Run(&config.Config{ZipPassword: "from-env"}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, name := range []string{icoName, svgName, "icons.zip"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	r, err := zip.OpenReader(filepath.Join(out, "icons.zip"))
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	defer r.Close()

	names := map[string]bool{}
	for _, f := range r.File {
		names[f.Name] = true
		if !f.IsEncrypted() {
			t.Errorf("%s not encrypted with the environment password", f.Name)
		}
	}
	for _, want := range []string{"icon16.png", "icon48.png", "icon512.png", icoName, svgName} {
		if !names[want] {
			t.Errorf("bundle missing %s", want)
		}
	}
}

func TestWriteICOSkipsOversized(t *testing.T) {
	out := t.TempDir()
	c := &CLICmd{Out: out}

	big, _ := icon.Render(512)
	dest, err := c.writeICO([]*image.NRGBA{big, nil})
	if err != nil || dest != "" {
		t.Errorf("writeICO = %q, %v; want nothing written", dest, err)
	}
	if _, err := os.Stat(filepath.Join(out, icoName)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("favicon written for oversized input")
	}
}
