// Package atlas packs generated sprites into a single texture atlas
// with a JSON index.
package atlas

import (
	"encoding/json"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/internal/fs"
	"github.com/akeil/spritegen/internal/logging"
	"github.com/akeil/spritegen/pkg/output"
)

// Index maps sprite names to their rectangle in the atlas as [x0, y0, x1, y1].
type Index map[string][]int

type sprite struct {
	name string
	img  image.Image
}

// Pack reads all PNG files from dir and packs them into one image.
//
// Sprites are sorted by height and placed in rows ("shelves") that are at
// most maxWidth pixels wide. A sprite wider than maxWidth gets a row of
// its own. The index uses the file name without extension.
func Pack(dir string, maxWidth int) (*image.RGBA, Index, error) {
	if maxWidth <= 0 {
		return nil, nil, spritegen.NewValidationError("invalid atlas width %d", maxWidth)
	}

	sprites, err := readDir(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(sprites) == 0 {
		return nil, nil, spritegen.NewValidationError("no PNG files in %q", dir)
	}

	sort.SliceStable(sprites, func(i, j int) bool {
		hi, hj := sprites[i].img.Bounds().Dy(), sprites[j].img.Bounds().Dy()
		if hi != hj {
			return hi > hj
		}
		return sprites[i].name < sprites[j].name
	})

	index := make(Index)
	rects := make([]image.Rectangle, len(sprites))
	x, y, shelf, width := 0, 0, 0, 0
	for i, s := range sprites {
		b := s.img.Bounds()
		if x > 0 && x+b.Dx() > maxWidth {
			// next shelf
			x = 0
			y += shelf
			shelf = 0
		}

		r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
		rects[i] = r
		index[s.name] = []int{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y}
		logging.Debug("%v => %v", s.name, r)

		x += b.Dx()
		if b.Dy() > shelf {
			shelf = b.Dy()
		}
		if x > width {
			width = x
		}
	}

	sheet := image.NewRGBA(image.Rect(0, 0, width, y+shelf))
	for i, s := range sprites {
		draw.Draw(sheet, rects[i], s.img, s.img.Bounds().Min, draw.Src)
	}
	logging.Info("Packed %d sprites into %vx%v atlas", len(sprites), width, y+shelf)

	return sheet, index, nil
}

func readDir(dir string) ([]sprite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var sprites []sprite
	for _, e := range entries {
		if e.IsDir() || strings.ToLower(filepath.Ext(e.Name())) != ".png" {
			continue
		}

		path := filepath.Join(dir, e.Name())
		img, err := readPNG(path)
		if err != nil {
			return nil, spritegen.Wrap(err, "read sprite %q", path)
		}
		sprites = append(sprites, sprite{
			name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			img:  img,
		})
	}
	return sprites, nil
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// Write saves the atlas as <base>.png and its index as <base>.json.
func Write(base string, img image.Image, index Index) error {
	err := output.Save(base+".png", img)
	if err != nil {
		return err
	}

	indexPath := base + ".json"
	err = fs.WriteFile(indexPath, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(index)
	})
	if err != nil {
		return spritegen.Wrap(err, "write index %q", indexPath)
	}
	return nil
}
