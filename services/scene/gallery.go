package scene

import (
	"shape-studio/services/generator"
	"shape-studio/services/types"
)

// Fixed parameters of the gallery variant.
const (
	GalleryWidth   = 1280.0
	GalleryHeight  = 1024.0
	GalleryMinSide = 20.0
	GalleryMaxSide = 150.0
)

// Gallery is the capped variant's model: a fixed canvas that spawns one
// shape per tick until MaxShapes is reached, then halts for good. Nothing
// ever removes shapes in this variant, so the halt is permanent.
type Gallery struct {
	Shapes    []types.Shape // newest first, never longer than MaxShapes
	Canvas    types.Canvas
	Seed      int64 // random-seed snapshot for reproducing the run
	MaxShapes int
}

// NewGallery builds a gallery model over the fixed canvas.
func NewGallery(seed int64, maxShapes int) Gallery {
	return Gallery{
		Canvas:    types.Canvas{Width: GalleryWidth, Height: GalleryHeight},
		Seed:      seed,
		MaxShapes: maxShapes,
	}
}

// Full reports whether the shape cap has been reached.
func (g Gallery) Full() bool {
	return len(g.Shapes) >= g.MaxShapes
}

// Bounds returns the fixed generation bounds of the gallery.
func (g Gallery) Bounds() generator.Bounds {
	return generator.Bounds{
		CanvasWidth:  g.Canvas.Width,
		CanvasHeight: g.Canvas.Height,
		MinSide:      GalleryMinSide,
		MaxSide:      GalleryMaxSide,
	}
}

// Step is the gallery transition function. It never mutates the receiver.
func (g Gallery) Step(msg Msg) (Gallery, []Command) {
	switch msg := msg.(type) {
	case TickMsg:
		if g.Full() {
			return g, nil
		}
		return g, []Command{GenerateCommand{Bounds: g.Bounds()}}

	case ShapeMsg:
		// A shape generated just before the cap was reached may still
		// arrive; drop it rather than exceed MaxShapes.
		if g.Full() {
			return g, nil
		}
		next := g
		next.Shapes = prepend(g.Shapes, msg.Shape)
		return next, nil
	}

	return g, nil
}
