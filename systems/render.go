package systems

import (
	"image"
	"math"

	"github.com/automoto/propertyanimation/components"
	"github.com/automoto/propertyanimation/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawStarField fills the field with its background and draws the star and every
// falling particle, clipped to the field.
func DrawStarField(ecs *ecs.ECS, screen *ebiten.Image) {
	fieldEntry, ok := components.StarField.First(ecs.World)
	if !ok {
		return
	}
	fd := components.StarField.Get(fieldEntry)
	top := screen.Bounds().Dy() - int(fd.Height)

	vector.FillRect(screen, 0, float32(top), float32(fd.Width), float32(fd.Height), fd.Background, false)

	// SubImage keeps parent coordinates, so children are offset by top and clipped
	field := screen.SubImage(image.Rect(0, top, int(fd.Width), top+int(fd.Height))).(*ebiten.Image)

	// Star below, particles above it
	tags.Star.Each(ecs.World, func(e *donburi.Entry) {
		drawChild(field, e, float64(top))
	})
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		drawChild(field, e, float64(top))
	})
}

func drawChild(dst *ebiten.Image, e *donburi.Entry, top float64) {
	s := components.Sprite.Get(e)
	if s.Image == nil {
		return
	}
	t := components.Transform.Get(e)

	// Image may be rasterized larger than the layout size
	b := s.Image.Bounds()
	fitX := s.Width / float64(b.Dx())
	fitY := s.Height / float64(b.Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.Filter = ebiten.FilterLinear

	drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	drawOp.GeoM.Scale(fitX*t.ScaleX, fitY*t.ScaleY)
	drawOp.GeoM.Rotate(t.Rotation * math.Pi / 180)
	drawOp.GeoM.Translate(
		t.Left+s.Width/2+t.TranslationX,
		top+t.Top+s.Height/2+t.TranslationY,
	)
	drawOp.ColorScale.ScaleAlpha(float32(clamp01(t.Alpha)))

	dst.DrawImage(s.Image, drawOp)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
