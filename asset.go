package spritegen

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
)

// Kind selects the generator that draws an asset.
type Kind int

const (
	Ship Kind = iota
	Enemy
	Explosion
	Glow
	Bullets
	PowerUp
	Starfield
)

var kindNames = map[Kind]string{
	Ship:      "ship",
	Enemy:     "enemy",
	Explosion: "explosion",
	Glow:      "glow",
	Bullets:   "bullets",
	PowerUp:   "powerup",
	Starfield: "starfield",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if !ok {
		return "UNKNOWN"
	}
	return s
}

// ParseKind looks up a Kind by its name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == strings.ToLower(s) {
			return k, nil
		}
	}
	return Ship, NewValidationError("invalid asset kind %q", s)
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	x, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = x
	return nil
}

func (k Kind) MarshalJSON() ([]byte, error) {
	s := k.String()
	if s == "UNKNOWN" {
		return nil, NewValidationError("invalid asset kind %d", int(k))
	}
	return quote(s), nil
}

// Style is the shape style for enemies.
type Style int

const (
	NoStyle Style = iota
	Basic
	Medium
	Heavy
	Boss
)

var styleNames = map[Style]string{
	NoStyle: "",
	Basic:   "basic",
	Medium:  "medium",
	Heavy:   "heavy",
	Boss:    "boss",
}

func (s Style) String() string {
	name, ok := styleNames[s]
	if !ok {
		return "UNKNOWN"
	}
	return name
}

// ParseStyle looks up a Style by its name.
// The empty string is NoStyle.
func ParseStyle(s string) (Style, error) {
	for st, name := range styleNames {
		if name == strings.ToLower(s) {
			return st, nil
		}
	}
	return NoStyle, NewValidationError("invalid enemy style %q", s)
}

func (s *Style) UnmarshalJSON(b []byte) error {
	var str string
	err := json.Unmarshal(b, &str)
	if err != nil {
		return err
	}

	x, err := ParseStyle(str)
	if err != nil {
		return err
	}
	*s = x
	return nil
}

func (s Style) MarshalJSON() ([]byte, error) {
	name := s.String()
	if name == "UNKNOWN" {
		return nil, NewValidationError("invalid enemy style %d", int(s))
	}
	return quote(name), nil
}

func quote(s string) []byte {
	buf := bytes.NewBufferString(`"`)
	buf.WriteString(s)
	buf.WriteString(`"`)
	return buf.Bytes()
}

// Output directories, relative to the output base directory.
const (
	SpritesDir     = "assets/sprites"
	BackgroundsDir = "assets/backgrounds"
)

// Asset describes a single generated image file.
//
// Width and Height are the size of a single frame.
// Multi-frame assets are laid out horizontally, see SheetWidth.
type Asset struct {
	// Name is the file name, including the extension.
	Name string `json:"name"`
	// Dir is the directory relative to the output base.
	Dir    string `json:"dir"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	// Frames is the number of animation frames; zero means one.
	Frames int   `json:"frames,omitempty"`
	Kind   Kind  `json:"kind"`
	Style  Style `json:"style,omitempty"`
	// Color is the base color as a hex code or color name.
	Color string `json:"color,omitempty"`
	// Deterministic makes randomized assets reproducible.
	Deterministic bool `json:"deterministic,omitempty"`
}

// FrameCount returns the number of frames, at least one.
func (a Asset) FrameCount() int {
	if a.Frames < 1 {
		return 1
	}
	return a.Frames
}

// SheetWidth is the width of the complete image in pixels.
func (a Asset) SheetWidth() int {
	return a.FrameCount() * a.Width
}

// Path returns the location of the file below base.
func (a Asset) Path(base string) string {
	return filepath.Join(base, filepath.FromSlash(a.Dir), a.Name)
}

// Ext returns the lowercase file extension, e.g. ".png".
func (a Asset) Ext() string {
	return strings.ToLower(filepath.Ext(a.Name))
}

// Validate checks the descriptor for values no generator can work with.
func (a Asset) Validate() error {
	if a.Name == "" {
		return NewValidationError("asset has no name")
	}
	if filepath.Base(a.Name) != a.Name {
		return NewValidationError("asset name %q must not contain a path", a.Name)
	}
	switch a.Ext() {
	case ".png", ".jpg", ".jpeg":
		// valid
	default:
		return NewValidationError("unsupported file type %q for %q", a.Ext(), a.Name)
	}
	if a.Width <= 0 || a.Height <= 0 {
		return NewValidationError("invalid size %dx%d for %q", a.Width, a.Height, a.Name)
	}
	if a.Frames < 0 {
		return NewValidationError("invalid frame count %d for %q", a.Frames, a.Name)
	}
	if a.Kind.String() == "UNKNOWN" {
		return NewValidationError("invalid kind %d for %q", int(a.Kind), a.Name)
	}
	if a.Kind == Enemy && a.Style == NoStyle {
		return NewValidationError("enemy %q has no style", a.Name)
	}
	if a.Style.String() == "UNKNOWN" {
		return NewValidationError("invalid style %d for %q", int(a.Style), a.Name)
	}

	return nil
}
