package sprites

import (
	"context"
	"image"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/internal/imaging"
	"github.com/akeil/spritegen/internal/logging"
	"github.com/akeil/spritegen/pkg/canvas"
	"github.com/akeil/spritegen/pkg/output"
)

// Generator renders a list of assets and writes them below Dir.
type Generator struct {
	// Dir is the output base directory.
	Dir     string
	Options Options
	// Jobs is the number of assets rendered concurrently.
	Jobs int
	// Verify rejects assets with empty frames.
	Verify bool
	// Done is called after each asset was written.
	// Calls are serialized.
	Done func(a spritegen.Asset, path string)

	mx sync.Mutex
}

// Run generates all assets.
//
// Stops at the first error; assets that were already written are kept.
func (g *Generator) Run(ctx context.Context, assets []spritegen.Asset) error {
	jobs := g.Jobs
	if jobs < 1 {
		jobs = 1
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for _, a := range assets {
		a := a
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return g.generate(a)
		})
	}

	return group.Wait()
}

func (g *Generator) generate(a spritegen.Asset) error {
	img, err := Render(a, g.Options)
	if err != nil {
		return err
	}

	if g.Verify {
		err = Verify(img, a)
		if err != nil {
			return err
		}
	}

	path := a.Path(g.Dir)
	err = output.Save(path, img)
	if err != nil {
		return err
	}
	logging.Info("Generated %q", path)

	if g.Done != nil {
		g.mx.Lock()
		defer g.mx.Unlock()
		g.Done(a, path)
	}
	return nil
}

// Verify checks that the image has the expected size
// and that no frame is completely transparent.
func Verify(img image.Image, a spritegen.Asset) error {
	b := img.Bounds()
	if b.Dx() != a.SheetWidth() || b.Dy() != a.Height {
		return spritegen.NewValidationError("%q is %dx%d, expected %dx%d",
			a.Name, b.Dx(), b.Dy(), a.SheetWidth(), a.Height)
	}

	for i := 0; i < a.FrameCount(); i++ {
		slot := canvas.Slot(i, a.Width, a.Height).Add(b.Min)
		if imaging.IsBlank(img, slot) {
			return spritegen.NewBlankFrame("frame %d of %q", i, a.Name)
		}
	}
	return nil
}
