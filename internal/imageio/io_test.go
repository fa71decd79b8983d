package imageio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/smooth"
)

func testGrid(t *testing.T) *smooth.Grid {
	t.Helper()
	g, err := smooth.NewGrid(6, 8)
	if err != nil {
		t.Fatal(err)
	}
	for r := range g.Rows() {
		for c := range g.Cols() {
			g.Set(r, c, smooth.Pixel{uint8(r * 40), uint8(c * 30), uint8(r*c + 5)})
		}
	}
	return g
}

func TestSaveLoadLossless(t *testing.T) {
	dir := t.TempDir()
	g := testGrid(t)

	for _, name := range []string{"out.png", "out.bmp", "out.tif", "out.TIFF"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(g, path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !got.Equal(g) {
				t.Error("round trip changed pixels")
			}
		})
	}
}

func TestSaveLoadJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	g := testGrid(t)

	if err := Save(g, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// JPEG is lossy; only the dimensions must survive.
	if !got.SameSize(g) {
		t.Errorf("dims = %dx%d, want %dx%d", got.Rows(), got.Cols(), g.Rows(), g.Cols())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrLoad) {
		t.Errorf("err = %v, want ErrLoad", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want to wrap os.ErrNotExist", err)
	}
}

func TestLoadNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrLoad) {
		t.Errorf("err = %v, want ErrLoad", err)
	}
}

func TestLoadSniffsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	g := testGrid(t)

	var buf bytes.Buffer
	if err := Encode(&buf, g, FormatPNG); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "image.data")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(g) {
		t.Error("sniffed PNG differs from original")
	}
}

func TestSaveUnsupported(t *testing.T) {
	dir := t.TempDir()
	g := testGrid(t)

	for _, name := range []string{"out.webp", "out.gif", "noext"} {
		err := Save(g, filepath.Join(dir, name))
		if !errors.Is(err, ErrSave) || !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Save(%s) err = %v, want ErrSave and ErrUnsupportedFormat", name, err)
		}
	}
}

func TestSaveUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.png")
	if err := Save(testGrid(t), path); !errors.Is(err, ErrSave) {
		t.Errorf("err = %v, want ErrSave", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.png", FormatPNG},
		{"a.JPG", FormatJPEG},
		{"dir/b.jpeg", FormatJPEG},
		{"c.bmp", FormatBMP},
		{"d.tif", FormatTIFF},
		{"e.webp", FormatWebP},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatFromPath("f.gif"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFromPath(f.gif) err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"png": FormatPNG, ".jpg": FormatJPEG, "tiff": FormatTIFF} {
		got, err := ParseFormat(name)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", name, got, err, want)
		}
	}
}

func TestFormatExtAndCanEncode(t *testing.T) {
	tests := []struct {
		f         Format
		ext       string
		canEncode bool
	}{
		{FormatPNG, ".png", true},
		{FormatJPEG, ".jpg", true},
		{FormatBMP, ".bmp", true},
		{FormatTIFF, ".tif", true},
		{FormatWebP, ".webp", false},
	}
	for _, tt := range tests {
		if got := tt.f.Ext(); got != tt.ext {
			t.Errorf("%s.Ext() = %q, want %q", tt.f, got, tt.ext)
		}
		if got := tt.f.CanEncode(); got != tt.canEncode {
			t.Errorf("%s.CanEncode() = %v, want %v", tt.f, got, tt.canEncode)
		}
	}
}
