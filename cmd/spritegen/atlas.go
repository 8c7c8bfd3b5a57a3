package main

import (
	"fmt"

	"github.com/akeil/spritegen/pkg/atlas"
)

func doAtlas(dir, base string, width int) error {
	fmt.Printf("%v pack sprites from %q\n", ellipsis, dir)
	img, index, err := atlas.Pack(dir, width)
	if err != nil {
		return err
	}

	err = atlas.Write(base, img, index)
	if err != nil {
		return err
	}

	b := img.Bounds()
	fmt.Printf("%v %d sprites saved as %q (%dx%d).\n", checkmark, len(index), base+".png", b.Dx(), b.Dy())
	return nil
}
