package sprites

import (
	"image"
	"strings"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/internal/logging"
	"github.com/akeil/spritegen/pkg/canvas"
	"github.com/akeil/spritegen/pkg/palette"
)

// symbolFunc lays out the symbol of a power-up icon of the given size.
type symbolFunc func(size float64) []canvas.Shape

var symbols = map[string]symbolFunc{
	"weapon": textSymbol("W", 10),
	"shield": shieldSymbol,
	"speed":  speedSymbol,
	"life":   textSymbol("1UP", 7),
	"bomb":   bombSymbol,
}

// PowerUpType extracts the type from a file name like "powerup_shield.png".
func PowerUpType(name string) string {
	name = strings.TrimSuffix(name, ".png")
	return strings.TrimPrefix(name, "powerup_")
}

func renderPowerUp(a spritegen.Asset, opts Options) (*image.RGBA, error) {
	base, err := baseColor(a, "#ffff00")
	if err != nil {
		return nil, err
	}

	size := float64(a.Width)
	if a.Height < a.Width {
		size = float64(a.Height)
	}
	c := size / 2
	u := size / 24

	shapes := []canvas.Shape{
		canvas.Circle(c, c, 10*u, palette.WithAlpha(base, 128)),
		canvas.Ellipse{
			CX: c, CY: c,
			RX: 8 * u, RY: 8 * u,
			Fill:   base,
			Stroke: palette.White,
			Width:  lineWidth(u, 1),
		},
	}

	kind := PowerUpType(a.Name)
	sym := symbols[kind]
	if sym == nil {
		logging.Warning("No symbol for power-up %q", kind)
	} else {
		shapes = append(shapes, sym(size)...)
	}

	img := canvas.New(a.Width, a.Height)
	err = img.Draw(shapes...)
	if err != nil {
		return nil, err
	}
	return img.Image(), nil
}

func textSymbol(text string, px float64) symbolFunc {
	return func(size float64) []canvas.Shape {
		c := size / 2
		return []canvas.Shape{
			canvas.Text{
				X: c, Y: c,
				Text:  text,
				Color: palette.Black,
				Face:  fontFace(px * size / 24),
			},
		}
	}
}

func shieldSymbol(size float64) []canvas.Shape {
	c, u := size/2, size/24
	return []canvas.Shape{
		canvas.Polygon{
			Points: []canvas.Point{
				{X: c, Y: 6 * u},
				{X: c - 4*u, Y: 9 * u},
				{X: c - 4*u, Y: 13 * u},
				{X: c, Y: 18 * u},
				{X: c + 4*u, Y: 13 * u},
				{X: c + 4*u, Y: 9 * u},
			},
			Fill: palette.Black,
		},
	}
}

func speedSymbol(size float64) []canvas.Shape {
	c, u := size/2, size/24
	return []canvas.Shape{
		canvas.Polygon{
			Points: []canvas.Point{
				{X: c + 5*u, Y: c},
				{X: c - u, Y: c - 4*u},
				{X: c - u, Y: c - u},
				{X: c - 5*u, Y: c - u},
				{X: c - 5*u, Y: c + u},
				{X: c - u, Y: c + u},
				{X: c - u, Y: c + 4*u},
			},
			Fill: palette.Black,
		},
	}
}

func bombSymbol(size float64) []canvas.Shape {
	c, u := size/2, size/24
	return []canvas.Shape{
		canvas.Circle(c, c+u, 3.5*u, palette.Black),
		canvas.Line{
			X0: c, Y0: c - 2*u,
			X1: c + 2*u, Y1: c - 5*u,
			Color: palette.Black,
			Width: lineWidth(u, 1),
		},
		canvas.Circle(c+2*u, c-5*u, u, palette.White),
	}
}
