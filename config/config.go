package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; everything in the demo draws on it.
const Default ecs.LayerID = 0

type Config struct {
	Width  int
	Height int
	Title  string
}

// StarFieldConfig describes the container the star and the shower particles live in
type StarFieldConfig struct {
	// Top is where the field starts below the button bar
	Top        int
	Background color.RGBA

	// Base size of the star sprite before any scaling
	StarWidth  int
	StarHeight int
	StarColor  color.RGBA
	StarPoints int     // number of star tips
	StarInner  float64 // inner radius as a fraction of the outer radius

	// Cell size of the resolv space that tracks children
	CellSize int
}

// UIConfig contains button bar configuration values
type UIConfig struct {
	ButtonWidth   int
	ButtonHeight  int
	ButtonSpacing int
	BarPadding    int
	FontSize      float64

	ButtonIdle     color.RGBA
	ButtonHover    color.RGBA
	ButtonPressed  color.RGBA
	ButtonDisabled color.RGBA
	TextIdle       color.RGBA
	TextDisabled   color.RGBA
	BarBackground  color.RGBA
}

var C *Config
var StarField StarFieldConfig
var UI UIConfig

func init() {
	C = &Config{
		Width:  480,
		Height: 800,
		Title:  "Property Animation",
	}

	StarField = StarFieldConfig{
		Top:        48,
		Background: color.RGBA{0, 0, 0, 255},

		StarWidth:  72,
		StarHeight: 72,
		StarColor:  color.RGBA{255, 214, 0, 255},
		StarPoints: 5,
		StarInner:  0.45,

		CellSize: 32,
	}

	UI = UIConfig{
		ButtonWidth:   74,
		ButtonHeight:  32,
		ButtonSpacing: 4,
		BarPadding:    8,
		FontSize:      11,

		ButtonIdle:     color.RGBA{60, 60, 80, 255},
		ButtonHover:    color.RGBA{80, 80, 100, 255},
		ButtonPressed:  color.RGBA{40, 40, 60, 255},
		ButtonDisabled: color.RGBA{40, 40, 40, 255},
		TextIdle:       color.RGBA{255, 255, 255, 255},
		TextDisabled:   color.RGBA{100, 100, 100, 255},
		BarBackground:  color.RGBA{20, 20, 30, 255},
	}
}

// FieldHeight is the height of the star field below the button bar.
func FieldHeight() int {
	return C.Height - StarField.Top
}
