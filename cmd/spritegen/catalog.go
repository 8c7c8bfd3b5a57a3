package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/akeil/spritegen/internal/fs"
	"github.com/akeil/spritegen/pkg/catalog"
	"github.com/akeil/spritegen/pkg/sprites"
)

func doCatalog(s settings, path string, validate bool) error {
	assets, err := loadAssets(s)
	if err != nil {
		return err
	}

	opts := sprites.Options{Seed: s.seed, Deterministic: s.deterministic}
	entries := make([]catalog.Entry, 0, len(assets))
	for _, a := range assets {
		fmt.Printf("%v render %q\n", ellipsis, a.Name)
		img, err := sprites.Render(a, opts)
		if err != nil {
			fmt.Printf("%v Failed to render %q: %v\n", crossmark, a.Name, err)
			return err
		}
		entries = append(entries, catalog.Entry{Asset: a, Image: img})
	}

	var buf bytes.Buffer
	err = catalog.Render(entries, &buf)
	if err != nil {
		return err
	}

	if validate {
		err = catalog.Validate(buf.Bytes())
		if err != nil {
			return err
		}
		fmt.Printf("%v catalog is valid\n", checkmark)
	}

	err = fs.WriteFile(path, func(w io.Writer) error {
		_, err := buf.WriteTo(w)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Printf("%v catalog saved as %q.\n", checkmark, path)
	return nil
}
