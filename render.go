package poisson

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Render draws a two dimensional distribution over the unit box onto a
// width x height canvas, each point a filled disc of half the given
// radius (so touching discs mean points at minimum separation).
// Points outside [0,1)^2 simply fall off the canvas.
func Render(points []Point, radius float64, width, height int) (image.Image, error) {
	ctx := gg.NewContext(width, height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	ctx.SetRGB(0.15, 0.15, 0.15)
	for _, p := range points {
		if len(p) != 2 {
			return nil, errors.Errorf("can only render 2d points, have %d dims", len(p))
		}
		ctx.DrawCircle(p[0]*float64(width), p[1]*float64(height), radius*float64(width)/2)
		ctx.Fill()
	}

	return ctx.Image(), nil
}

// SavePNG renders the given distribution and writes it to disk.
// Sugar around Render followed by a PNG write.
func SavePNG(fpath string, points []Point, radius float64, width, height int) error {
	im, err := Render(points, radius, width, height)
	if err != nil {
		return err
	}
	ctx := gg.NewContextForRGBA(im.(*image.RGBA))
	return ctx.SavePNG(fpath)
}
