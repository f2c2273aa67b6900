package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is the image drawn for a child of the star field. Width and Height are the
// unscaled size; Image may be nil before assets are loaded.
type SpriteData struct {
	Image  *ebiten.Image
	Width  float64
	Height float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
