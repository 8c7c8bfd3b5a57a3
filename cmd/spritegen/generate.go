package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/pkg/sprites"
)

func doGenerate(s settings, jobs int, verify bool) error {
	assets, err := loadAssets(s)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("%v generate %d assets in %q\n", ellipsis, len(assets), s.outDir)
	g := &sprites.Generator{
		Dir:     s.outDir,
		Options: sprites.Options{Seed: s.seed, Deterministic: s.deterministic},
		Jobs:    jobs,
		Verify:  verify,
		Done: func(a spritegen.Asset, path string) {
			fmt.Printf("%v %v %q saved as %q.\n", checkmark, a.Kind, a.Name, path)
		},
	}

	err = g.Run(ctx, assets)
	if err != nil {
		return err
	}

	fmt.Printf("%v All assets generated.\n", checkmark)
	return nil
}
