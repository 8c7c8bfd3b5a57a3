package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/spritegen"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

type settings struct {
	outDir        string
	manifest      string
	seed          int64
	deterministic bool
}

func main() {
	app := kingpin.New("spritegen", "Sprite generator for a retro shooter")
	app.HelpFlag.Short('h')

	var s settings
	logLevel := app.Flag("log-level", "Log level (debug, info, warning, error)").Envar("SPRITEGEN_LOG_LEVEL").Default("warning").String()
	app.Flag("manifest", "JSON asset manifest, defaults to the built-in asset list").Short('m').Envar("SPRITEGEN_MANIFEST").StringVar(&s.manifest)
	app.Flag("seed", "Seed for deterministic assets").Default("42").Int64Var(&s.seed)
	app.Flag("deterministic", "Make all assets reproducible").BoolVar(&s.deterministic)

	gen := app.Command("generate", "Generate all assets").Default()
	var (
		genOut = gen.Flag("out", "Output base directory").Short('o').Envar("SPRITEGEN_OUT").Default(".").String()
		jobs   = gen.Flag("jobs", "Number of assets to render concurrently").Short('j').Default("1").Int()
		verify = gen.Flag("verify", "Fail on blank frames").Bool()
	)

	list := app.Command("list", "List the assets")

	atl := app.Command("atlas", "Pack generated sprites into a texture atlas")
	var (
		atlasDir   = atl.Flag("dir", "Directory with PNG sprites").Default(spritegen.SpritesDir).String()
		atlasOut   = atl.Flag("out", "Output base name, without extension").Short('o').Default("atlas").String()
		atlasWidth = atl.Flag("width", "Maximum atlas width in pixels").Default("1024").Int()
	)

	cat := app.Command("catalog", "Render a PDF overview of all assets")
	var (
		catOut      = cat.Flag("out", "PDF file").Short('o').Default("catalog.pdf").String()
		catValidate = cat.Flag("validate", "Validate the written PDF").Bool()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	spritegen.SetLogLevel(*logLevel)

	var err error
	switch command {
	case gen.FullCommand():
		s.outDir = *genOut
		err = doGenerate(s, *jobs, *verify)
	case list.FullCommand():
		err = doList(s)
	case atl.FullCommand():
		err = doAtlas(*atlasDir, *atlasOut, *atlasWidth)
	case cat.FullCommand():
		err = doCatalog(s, *catOut, *catValidate)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("%v Error: %v\n", crossmark, err)
		os.Exit(1)
	}
	os.Exit(0)
}

// loadAssets reads the manifest, or returns the built-in assets if none is set.
func loadAssets(s settings) ([]spritegen.Asset, error) {
	if s.manifest == "" {
		return spritegen.DefaultAssets(), nil
	}

	f, err := os.Open(s.manifest)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	assets, err := spritegen.ReadManifest(f)
	if err != nil {
		return nil, spritegen.Wrap(err, "manifest %q", s.manifest)
	}
	return assets, nil
}
