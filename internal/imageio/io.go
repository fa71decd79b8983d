// Package imageio loads and saves smooth.Grid values as image files.
//
// The format is chosen from the file extension: PNG, JPEG, BMP and TIFF
// can be read and written, WebP can only be read. Loading a file with an
// unknown extension falls back to content sniffing.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register the WebP decoder for image.Decode

	"github.com/gogpu/smooth"
)

// I/O errors.
var (
	// ErrLoad is returned when an image cannot be read or decoded.
	ErrLoad = errors.New("imageio: load")

	// ErrSave is returned when an image cannot be encoded or written.
	ErrSave = errors.New("imageio: save")

	// ErrUnsupportedFormat is returned when the format cannot be handled
	// in the requested direction.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")
)

// DefaultJPEGQuality is the quality used when saving JPEG files.
const DefaultJPEGQuality = 95

// Format identifies an image file format.
type Format string

// Supported formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWebP Format = "webp"
)

var extFormats = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".webp": FormatWebP,
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extFormats[ext]
	if !ok {
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// ParseFormat resolves a format name such as "png" or "jpg".
func ParseFormat(name string) (Format, error) {
	return FormatFromPath("." + strings.TrimPrefix(name, "."))
}

// CanEncode reports whether Save and Encode support f.
func (f Format) CanEncode() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatBMP, FormatTIFF:
		return true
	default:
		return false
	}
}

// Ext returns the canonical file extension for f, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatTIFF:
		return ".tif"
	default:
		return "." + string(f)
	}
}

// Load reads the image at path. Every failure wraps ErrLoad.
func Load(path string) (*smooth.Grid, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer func() { _ = f.Close() }()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	return g, nil
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*smooth.Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return smooth.FromImage(img), nil
}

// Save writes g to path in the format implied by its extension. Every
// failure wraps ErrSave.
func Save(g *smooth.Grid, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, path, err)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	if err := Encode(f, g, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %w", ErrSave, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

// Encode writes g to w in the given format.
func Encode(w io.Writer, g *smooth.Grid, format Format) error {
	img := g.Image()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}
