package sprites

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/internal/imaging"
	"github.com/akeil/spritegen/pkg/canvas"
	"github.com/akeil/spritegen/pkg/palette"
)

func TestExplosionBurst(t *testing.T) {
	frames := 8
	first := ExplosionBurst(0, frames, 64)
	last := ExplosionBurst(frames-1, frames, 64)

	if first.Progress != 0 {
		t.Errorf("first frame progress %v", first.Progress)
	}
	if last.Progress != 1 {
		t.Errorf("last frame progress %v", last.Progress)
	}
	if first.Alpha != 255 {
		t.Errorf("first frame alpha %d", first.Alpha)
	}

	prev := first
	for i := 1; i < frames; i++ {
		b := ExplosionBurst(i, frames, 64)
		if b.Radius <= prev.Radius {
			t.Errorf("radius did not grow at frame %d: %v <= %v", i, b.Radius, prev.Radius)
		}
		if b.Alpha >= prev.Alpha {
			t.Errorf("alpha did not fall at frame %d: %d >= %d", i, b.Alpha, prev.Alpha)
		}
		if b.Radius > 32 {
			t.Errorf("radius %v exceeds frame at %d", b.Radius, i)
		}
		prev = b
	}

	single := ExplosionBurst(0, 1, 64)
	assert.Equal(t, 0.0, single.Progress)
}

func TestExplosionSheet(t *testing.T) {
	a := spritegen.Asset{
		Name: "explosion_set.png", Dir: spritegen.SpritesDir,
		Width: 64, Height: 64, Frames: 8,
		Kind: spritegen.Explosion, Deterministic: true,
	}
	img, err := Render(a, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 512, 64), img.Bounds())

	r0 := imaging.MassRadius(img, canvas.Slot(0, 64, 64))
	r7 := imaging.MassRadius(img, canvas.Slot(7, 64, 64))
	if r0 >= r7 {
		t.Errorf("explosion does not expand: first %v, last %v", r0, r7)
	}
	assert.NoError(t, Verify(img, a))
}

func TestEnemyShapesScale(t *testing.T) {
	base := palette.MustParse("#ff0066")
	sizes := [][2]float64{{32, 32}, {40, 40}, {64, 48}, {128, 96}}

	for style := range enemyStyles {
		var ref canvas.Box
		for i, size := range sizes {
			w, h := size[0], size[1]
			shapes, err := EnemyShapes(style, w, h, base)
			require.NoError(t, err)
			require.NotEmpty(t, shapes)

			b := union(shapes)
			if !b.Within(w, h) {
				t.Errorf("%v enemy at %vx%v exceeds its frame: %v", style, w, h, b)
			}

			// normalize to the unit square
			n := canvas.Box{X0: b.X0 / w, Y0: b.Y0 / h, X1: b.X1 / w, Y1: b.Y1 / h}
			if i == 0 {
				ref = n
				continue
			}
			assert.InDelta(t, ref.X0, n.X0, 1e-9, "%v %vx%v", style, w, h)
			assert.InDelta(t, ref.Y0, n.Y0, 1e-9, "%v %vx%v", style, w, h)
			assert.InDelta(t, ref.X1, n.X1, 1e-9, "%v %vx%v", style, w, h)
			assert.InDelta(t, ref.Y1, n.Y1, 1e-9, "%v %vx%v", style, w, h)
		}
	}
}

func TestEnemyUnknownStyle(t *testing.T) {
	_, err := EnemyShapes(spritegen.Style(42), 32, 32, palette.White)
	assert.True(t, spritegen.IsValidationError(err))
}

func TestRenderEnemies(t *testing.T) {
	for _, a := range spritegen.DefaultAssets() {
		if a.Kind != spritegen.Enemy {
			continue
		}
		img, err := Render(a, DefaultOptions())
		require.NoError(t, err, a.Name)
		assert.Equal(t, a.Width, img.Bounds().Dx(), a.Name)
		assert.Equal(t, a.Height, img.Bounds().Dy(), a.Name)

		// enemies are centered
		c := img.RGBAAt(a.Width/2, a.Height/2)
		assert.NotZero(t, c.A, a.Name)
		assert.Zero(t, img.RGBAAt(0, 0).A, a.Name)
	}
}

func TestShipSheet(t *testing.T) {
	a := spritegen.Asset{
		Name: "rynex.png", Dir: spritegen.SpritesDir,
		Width: 48, Height: 32, Frames: 5,
		Kind: spritegen.Ship, Color: "#00ccff",
	}
	img, err := Render(a, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 240, 32), img.Bounds())

	for i := 0; i < 5; i++ {
		if imaging.IsBlank(img, canvas.Slot(i, 48, 32)) {
			t.Errorf("ship frame %d is blank", i)
		}
	}
}

func TestShipPosesStayInFrame(t *testing.T) {
	p := palette.Derive(palette.MustParse("#00ccff"), engineColor)
	for _, pose := range ShipPoses {
		b := union(ShipShapes(pose, 48, 32, p))
		if !b.Within(48, 32) {
			t.Errorf("pose %q exceeds frame: %v", pose.Name, b)
		}
	}
}

func TestBulletSheet(t *testing.T) {
	a := spritegen.Asset{
		Name: "bullet_collection.png", Dir: spritegen.SpritesDir,
		Width: 16, Height: 16, Frames: 4,
		Kind: spritegen.Bullets,
	}
	img, err := Render(a, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.NoError(t, Verify(img, a))

	// player shot has a white core
	c := img.RGBAAt(8, 8)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(255), c.B)
}

func TestGlowRings(t *testing.T) {
	radii, alphas := GlowRings(20)
	assert.Equal(t, []float64{20, 15, 10, 5}, radii)
	assert.Equal(t, []uint8{64, 128, 191, 255}, alphas)

	radii, _ = GlowRings(0)
	assert.Empty(t, radii)
}

func TestGlow(t *testing.T) {
	a := spritegen.Asset{
		Name: "simple_explosion.png", Dir: spritegen.SpritesDir,
		Width: 128, Height: 128,
		Kind: spritegen.Glow, Color: "#ff0000",
	}
	img, err := Render(a, DefaultOptions())
	require.NoError(t, err)

	center := img.RGBAAt(64, 64)
	edge := img.RGBAAt(64, 2)
	if center.A <= edge.A {
		t.Errorf("glow should fade outward, center alpha %d, edge alpha %d", center.A, edge.A)
	}
	assert.Zero(t, img.RGBAAt(0, 0).A)
}

func TestStarfieldDeterministic(t *testing.T) {
	a := spritegen.Asset{
		Name: "starfield.jpg", Dir: spritegen.BackgroundsDir,
		Width: 160, Height: 120,
		Kind: spritegen.Starfield, Color: "#000033",
		Deterministic: true,
	}

	one, err := Render(a, DefaultOptions())
	require.NoError(t, err)
	two, err := Render(a, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, bytes.Equal(one.Pix, two.Pix), "deterministic starfield differs")

	other, err := Render(a, Options{Seed: 7})
	require.NoError(t, err)
	assert.False(t, bytes.Equal(one.Pix, other.Pix), "seed has no effect")

	// background is opaque everywhere
	for i := 3; i < len(one.Pix); i += 4 {
		if one.Pix[i] != 255 {
			t.Fatalf("transparent pixel at offset %d", i)
		}
	}
}

func TestRenderInvalid(t *testing.T) {
	a := spritegen.Asset{Name: "broken.png", Width: 0, Height: 16, Kind: spritegen.Glow}
	_, err := Render(a, DefaultOptions())
	assert.True(t, spritegen.IsValidationError(err))

	a = spritegen.Asset{Name: "broken.png", Width: 16, Height: 16, Kind: spritegen.Glow, Color: "nocolor"}
	_, err = Render(a, DefaultOptions())
	assert.True(t, spritegen.IsValidationError(err))
}

func TestVerify(t *testing.T) {
	a := spritegen.Asset{Name: "x.png", Width: 8, Height: 8, Frames: 2, Kind: spritegen.Explosion}

	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	img.Pix[3] = 255
	err := Verify(img, a)
	assert.True(t, spritegen.IsBlankFrame(err), "got %v", err)

	img.Pix[len(img.Pix)-1] = 255
	assert.NoError(t, Verify(img, a))

	err = Verify(image.NewRGBA(image.Rect(0, 0, 8, 8)), a)
	assert.True(t, spritegen.IsValidationError(err))
}

func TestPowerUpType(t *testing.T) {
	assert.Equal(t, "shield", PowerUpType("powerup_shield.png"))
	assert.Equal(t, "life", PowerUpType("powerup_life.png"))
}

func TestGeneratePowerUps(t *testing.T) {
	dir := t.TempDir()

	var done []string
	g := &Generator{
		Dir:     dir,
		Options: DefaultOptions(),
		Jobs:    3,
		Verify:  true,
		Done: func(a spritegen.Asset, path string) {
			done = append(done, a.Name)
		},
	}
	err := g.Run(context.Background(), spritegen.PowerUpAssets(24))
	require.NoError(t, err)

	expected := []string{
		"powerup_bomb.png",
		"powerup_life.png",
		"powerup_shield.png",
		"powerup_speed.png",
		"powerup_weapon.png",
	}
	sort.Strings(done)
	assert.Equal(t, expected, done)

	entries, err := os.ReadDir(filepath.Join(dir, spritegen.SpritesDir))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, expected, names)

	for _, name := range expected {
		f, err := os.Open(filepath.Join(dir, spritegen.SpritesDir, name))
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err, name)

		assert.Equal(t, image.Rect(0, 0, 24, 24), img.Bounds(), name)
		_, _, _, a := img.At(12, 12).RGBA()
		assert.Equal(t, uint32(0xffff), a, "%s center alpha", name)
		_, _, _, a = img.At(0, 0).RGBA()
		assert.Zero(t, a, "%s corner alpha", name)
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &Generator{Dir: t.TempDir(), Options: DefaultOptions()}
	err := g.Run(ctx, spritegen.PowerUpAssets(24))
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func union(shapes []canvas.Shape) canvas.Box {
	b := shapes[0].Bounds()
	for _, s := range shapes[1:] {
		b = b.Union(s.Bounds())
	}
	return b
}
