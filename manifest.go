package spritegen

import (
	"encoding/json"
	"io"
)

// DefaultAssets returns the complete asset list in generation order.
func DefaultAssets() []Asset {
	assets := []Asset{
		{Name: "rynex.png", Dir: SpritesDir, Width: 48, Height: 32, Frames: 5, Kind: Ship, Color: "#00ccff"},

		{Name: "gargoyle_diver.png", Dir: SpritesDir, Width: 32, Height: 32, Kind: Enemy, Style: Basic, Color: "#ff6600"},
		{Name: "faust.png", Dir: SpritesDir, Width: 40, Height: 40, Kind: Enemy, Style: Medium, Color: "#ff0066"},
		{Name: "armament_claw.png", Dir: SpritesDir, Width: 64, Height: 48, Kind: Enemy, Style: Heavy, Color: "#ff0000"},
		{Name: "evil_core.png", Dir: SpritesDir, Width: 128, Height: 96, Kind: Enemy, Style: Boss, Color: "#9900ff"},
		{Name: "hell_arm.png", Dir: SpritesDir, Width: 96, Height: 80, Kind: Enemy, Style: Heavy, Color: "#ff00ff"},
		{Name: "spark_lancer.png", Dir: SpritesDir, Width: 80, Height: 64, Kind: Enemy, Style: Heavy, Color: "#00ff00"},
		{Name: "versus.png", Dir: SpritesDir, Width: 64, Height: 64, Kind: Enemy, Style: Medium, Color: "#ffff00"},
		{Name: "dust_eag.png", Dir: SpritesDir, Width: 48, Height: 48, Kind: Enemy, Style: Medium, Color: "#ff9900"},
		{Name: "ratt_carry.png", Dir: SpritesDir, Width: 48, Height: 32, Kind: Enemy, Style: Basic, Color: "#ffaa00"},

		{Name: "explosion_set.png", Dir: SpritesDir, Width: 64, Height: 64, Frames: 8, Kind: Explosion, Deterministic: true},
		{Name: "pixel_explosion.png", Dir: SpritesDir, Width: 256, Height: 256, Kind: Glow, Color: "#ffff00"},
		{Name: "simple_explosion.png", Dir: SpritesDir, Width: 128, Height: 128, Kind: Glow, Color: "#ff0000"},
		{Name: "bullet_collection.png", Dir: SpritesDir, Width: 16, Height: 16, Frames: 4, Kind: Bullets},
	}

	assets = append(assets, PowerUpAssets(24)...)

	assets = append(assets, Asset{
		Name: "starfield.jpg", Dir: BackgroundsDir, Width: 800, Height: 600, Kind: Starfield, Color: "#000033",
	})

	return assets
}

// PowerUpAssets returns the five power-up icons at the given size.
func PowerUpAssets(size int) []Asset {
	types := []struct {
		name  string
		color string
	}{
		{"weapon", "#ffff00"},
		{"shield", "#00ff00"},
		{"speed", "#00ffff"},
		{"life", "#ff00ff"},
		{"bomb", "#ff6600"},
	}

	assets := make([]Asset, len(types))
	for i, t := range types {
		assets[i] = Asset{
			Name:   "powerup_" + t.name + ".png",
			Dir:    SpritesDir,
			Width:  size,
			Height: size,
			Kind:   PowerUp,
			Color:  t.color,
		}
	}
	return assets
}

// ReadManifest reads a JSON list of assets.
func ReadManifest(r io.Reader) ([]Asset, error) {
	var assets []Asset
	err := json.NewDecoder(r).Decode(&assets)
	if err != nil {
		return nil, Wrap(err, "read manifest")
	}

	for _, a := range assets {
		err = a.Validate()
		if err != nil {
			return nil, err
		}
	}

	return assets, nil
}

// WriteManifest writes the given assets as indented JSON.
func WriteManifest(w io.Writer, assets []Asset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(assets)
}
