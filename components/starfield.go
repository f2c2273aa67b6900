package components

import (
	"image/color"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// StarFieldData is the container every star is a child of
type StarFieldData struct {
	Width, Height float64
	Background    color.RGBA

	// Space holds one object per attached child
	Space *resolv.Space

	Children int // attached right now
	Removed  int // detached since the field was created
}

var StarField = donburi.NewComponentType[StarFieldData]()
