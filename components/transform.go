package components

import "github.com/yohamta/donburi"

// TransformData positions a child inside the star field. Left/Top is the layout
// position of the unscaled sprite; translation, rotation (degrees) and scale are
// applied on top of it around the sprite center.
type TransformData struct {
	Left, Top    float64
	TranslationX float64
	TranslationY float64
	Rotation     float64
	ScaleX       float64
	ScaleY       float64
	Alpha        float64
}

var Transform = donburi.NewComponentType[TransformData]()

// NewTransform returns an identity transform at the given layout position.
func NewTransform(left, top float64) TransformData {
	return TransformData{
		Left:   left,
		Top:    top,
		ScaleX: 1,
		ScaleY: 1,
		Alpha:  1,
	}
}

// Bounds returns the scaled box of a sprite of size w x h, in field coordinates.
func (t *TransformData) Bounds(w, h float64) (x, y, sw, sh float64) {
	sw, sh = w*t.ScaleX, h*t.ScaleY
	cx := t.Left + w/2 + t.TranslationX
	cy := t.Top + h/2 + t.TranslationY
	return cx - sw/2, cy - sh/2, sw, sh
}
