// Package output encodes generated images and writes them to disk.
package output

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/internal/fs"
	"github.com/akeil/spritegen/internal/logging"
)

// JPEGQuality is used for all JPEG output.
const JPEGQuality = 90

// Save encodes the image in the format given by the file extension of path
// and writes it. Missing directories are created.
//
// The file is written to a temporary name first, so an existing file at
// path is only replaced by a completely encoded image.
func Save(path string, img image.Image) error {
	ext := filepath.Ext(path)
	err := checkFormat(ext)
	if err != nil {
		return err
	}

	logging.Debug("Write %v image to %q", strings.ToUpper(ext[1:]), path)
	err = fs.WriteFile(path, func(w io.Writer) error {
		return Encode(w, img, ext)
	})
	if err != nil {
		return spritegen.Wrap(err, "save %q", path)
	}

	return nil
}

// Encode writes the image to w in the format for the given file extension.
// Supported are ".png", ".jpg" and ".jpeg".
func Encode(w io.Writer, img image.Image, ext string) error {
	err := checkFormat(ext)
	if err != nil {
		return err
	}

	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	default:
		return png.Encode(w, img)
	}
}

func checkFormat(ext string) error {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg":
		return nil
	default:
		return spritegen.NewValidationError("unsupported image format %q", ext)
	}
}
