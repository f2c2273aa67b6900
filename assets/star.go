package assets

import (
	"image"
	"image/color"
	"math"

	cfg "github.com/automoto/propertyanimation/config"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/vector"
)

// Stars are rasterized larger than their layout size so the 4x scale stays crisp.
const starOversample = 4

var starImage *ebiten.Image

// StarImage returns the star sprite, rasterizing it on first use.
func StarImage() *ebiten.Image {
	if starImage == nil {
		size := max(cfg.StarField.StarWidth, cfg.StarField.StarHeight) * starOversample
		starImage = ebiten.NewImageFromImage(RasterizeStar(size, cfg.StarField.StarPoints, cfg.StarField.StarInner, cfg.StarField.StarColor))
	}
	return starImage
}

// RasterizeStar draws a filled star with the given number of tips into a size x size
// image. inner is the radius of the notches as a fraction of the tip radius.
func RasterizeStar(size, points int, inner float64, clr color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if points < 2 || size <= 0 {
		return dst
	}

	r := vector.NewRasterizer(size, size)
	cx, cy := float64(size)/2, float64(size)/2
	outer := float64(size) / 2
	for i, n := 0, points*2; i < n; i++ {
		radius := outer
		if i%2 == 1 {
			radius = outer * inner
		}
		// first tip points straight up
		a := -math.Pi/2 + float64(i)*math.Pi/float64(points)
		x := float32(cx + radius*math.Cos(a))
		y := float32(cy + radius*math.Sin(a))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(clr), image.Point{})
	return dst
}
