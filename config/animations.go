package config

import (
	"image/color"
	"time"
)

// RotateConfig spins the star from From to To degrees
type RotateConfig struct {
	From, To float32
	Duration time.Duration
}

// TranslateConfig moves the star horizontally by Distance and back
type TranslateConfig struct {
	Distance    float32 // pixels, added to the current offset
	RepeatCount int
}

// ScaleConfig grows the star on both axes and back
type ScaleConfig struct {
	From, To    float32
	RepeatCount int
}

// FadeConfig fades the star out and back in
type FadeConfig struct {
	From, To    float32
	Duration    time.Duration // zero keeps the driver default
	RepeatCount int
}

// ColorizeConfig flashes the star field background
type ColorizeConfig struct {
	From, To    color.RGBA
	Duration    time.Duration
	RepeatCount int
}

// ShowerConfig holds the ranges each falling star draws from
type ShowerConfig struct {
	MinScale, MaxScale       float64
	MaxRotation              float64 // degrees, exclusive
	MinDuration, MaxDuration time.Duration
}

// AnimationsConfig groups the parameter tables of every trigger
type AnimationsConfig struct {
	Rotate    RotateConfig
	Translate TranslateConfig
	Scale     ScaleConfig
	Fade      FadeConfig
	Colorize  ColorizeConfig
	Shower    ShowerConfig
}

var Animations AnimationsConfig

func init() {
	Animations = DefaultAnimations()
}

// DefaultAnimations returns the built-in parameter tables.
func DefaultAnimations() AnimationsConfig {
	return AnimationsConfig{
		Rotate: RotateConfig{
			From:     -360,
			To:       0,
			Duration: 1000 * time.Millisecond,
		},
		Translate: TranslateConfig{
			Distance:    200,
			RepeatCount: 1,
		},
		Scale: ScaleConfig{
			From:        1,
			To:          4,
			RepeatCount: 1,
		},
		Fade: FadeConfig{
			From:        1,
			To:          0,
			RepeatCount: 1,
		},
		Colorize: ColorizeConfig{
			From:        color.RGBA{0, 0, 0, 255},
			To:          color.RGBA{255, 0, 0, 255},
			Duration:    500 * time.Millisecond,
			RepeatCount: 1,
		},
		Shower: ShowerConfig{
			MinScale:    0.1,
			MaxScale:    1.6,
			MaxRotation: 1080,
			MinDuration: 500 * time.Millisecond,
			MaxDuration: 2000 * time.Millisecond,
		},
	}
}
