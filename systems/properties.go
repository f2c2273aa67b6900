package systems

import (
	"image/color"

	"github.com/automoto/propertyanimation/anim"
	"github.com/automoto/propertyanimation/components"
	"github.com/yohamta/donburi"
)

// Animatable properties of a star field child. Reads of a destroyed entry return zero
// and writes are dropped, so animations outliving their entity are harmless.

func Rotation(e *donburi.Entry) anim.Property {
	return transformProperty(e, func(t *components.TransformData) *float64 { return &t.Rotation })
}

func TranslationX(e *donburi.Entry) anim.Property {
	return transformProperty(e, func(t *components.TransformData) *float64 { return &t.TranslationX })
}

func TranslationY(e *donburi.Entry) anim.Property {
	return transformProperty(e, func(t *components.TransformData) *float64 { return &t.TranslationY })
}

func ScaleX(e *donburi.Entry) anim.Property {
	return transformProperty(e, func(t *components.TransformData) *float64 { return &t.ScaleX })
}

func ScaleY(e *donburi.Entry) anim.Property {
	return transformProperty(e, func(t *components.TransformData) *float64 { return &t.ScaleY })
}

func Alpha(e *donburi.Entry) anim.Property {
	return transformProperty(e, func(t *components.TransformData) *float64 { return &t.Alpha })
}

// BackgroundColor is the star field's background.
func BackgroundColor(field *donburi.Entry) anim.ColorProperty {
	return anim.ColorProperty{
		Get: func() color.RGBA {
			if !field.Valid() {
				return color.RGBA{}
			}
			return components.StarField.Get(field).Background
		},
		Set: func(c color.RGBA) {
			if field.Valid() {
				components.StarField.Get(field).Background = c
			}
		},
	}
}

func transformProperty(e *donburi.Entry, field func(*components.TransformData) *float64) anim.Property {
	return anim.Property{
		Get: func() float32 {
			if !e.Valid() {
				return 0
			}
			return float32(*field(components.Transform.Get(e)))
		},
		Set: func(v float32) {
			if e.Valid() {
				*field(components.Transform.Get(e)) = float64(v)
			}
		},
	}
}
