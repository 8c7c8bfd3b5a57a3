package atlas

import (
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/pkg/output"
)

func writeSprite(t *testing.T, dir, name string, w, h int, c color.NRGBA) {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	err := output.Save(filepath.Join(dir, name), img)
	if err != nil {
		t.Fatal(err)
	}
}

func TestPack(t *testing.T) {
	dir := t.TempDir()
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	writeSprite(t, dir, "a.png", 16, 16, red)
	writeSprite(t, dir, "b.png", 32, 32, blue)
	writeSprite(t, dir, "c.png", 24, 8, red)
	writeSprite(t, dir, "wide.png", 80, 4, blue)
	// ignored
	writeSprite(t, dir, "bg.jpg", 8, 8, red)

	img, index, err := Pack(dir, 64)
	if err != nil {
		t.Fatal(err)
	}

	if len(index) != 4 {
		t.Errorf("unexpected index size %d: %v", len(index), index)
	}

	// sorted by height: b(32) a(16) | c(8) | wide(4)
	expected := Index{
		"b":    {0, 0, 32, 32},
		"a":    {32, 0, 48, 16},
		"c":    {0, 32, 24, 40},
		"wide": {0, 40, 80, 44},
	}
	for name, r := range expected {
		got := index[name]
		if len(got) != 4 || got[0] != r[0] || got[1] != r[1] || got[2] != r[2] || got[3] != r[3] {
			t.Errorf("%q placed at %v, expected %v", name, got, r)
		}
	}

	if img.Bounds() != image.Rect(0, 0, 80, 44) {
		t.Errorf("unexpected atlas size %v", img.Bounds())
	}
	if img.RGBAAt(40, 8) != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("sprite a not copied: %v", img.RGBAAt(40, 8))
	}
	if img.RGBAAt(60, 8).A != 0 {
		t.Errorf("gap should be transparent")
	}
}

func TestPackEmpty(t *testing.T) {
	_, _, err := Pack(t.TempDir(), 64)
	if !spritegen.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	_, _, err = Pack(t.TempDir(), 0)
	if !spritegen.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "out", "atlas")
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	err := Write(base, img, Index{"x": {0, 0, 4, 4}})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(base + ".png"); err != nil {
		t.Error(err)
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	var index Index
	err = json.Unmarshal(data, &index)
	if err != nil {
		t.Fatal(err)
	}
	if len(index["x"]) != 4 || index["x"][2] != 4 {
		t.Errorf("unexpected index %v", index)
	}
}
