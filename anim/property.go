package anim

import "image/color"

// Property is a float value that an animation reads once and writes every frame.
type Property struct {
	Get func() float32
	Set func(v float32)
}

// ColorProperty is a color value animated channel by channel.
type ColorProperty struct {
	Get func() color.RGBA
	Set func(c color.RGBA)
}
