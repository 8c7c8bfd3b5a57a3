package sprites

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/akeil/spritegen/internal/logging"
)

var (
	fontOnce sync.Once
	ttFont   *truetype.Font
)

// fontFace returns a face of the Go Regular font at the given pixel size.
// Falls back on a fixed bitmap font if the font cannot be parsed.
//
// Faces are not safe for concurrent use; create one per canvas.
func fontFace(size float64) font.Face {
	fontOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			logging.Warning("font parse failed, using basicfont: %v", err)
			return
		}
		ttFont = f
	})

	if ttFont == nil {
		return basicfont.Face7x13
	}

	return truetype.NewFace(ttFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
