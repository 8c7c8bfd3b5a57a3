package main

import (
	"fmt"
	"path"
)

func doList(s settings) error {
	assets, err := loadAssets(s)
	if err != nil {
		return err
	}

	fmt.Println("Assets")
	fmt.Println("------")
	for _, a := range assets {
		size := fmt.Sprintf("%dx%d", a.Width, a.Height)
		if a.FrameCount() > 1 {
			size = fmt.Sprintf("%s x%d", size, a.FrameCount())
		}

		fmt.Printf("%-10v %-8v %-12v %v\n", a.Kind, a.Style, size, path.Join(a.Dir, a.Name))
	}

	return nil
}
