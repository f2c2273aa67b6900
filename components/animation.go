package components

import (
	"github.com/automoto/propertyanimation/anim"
	"github.com/yohamta/donburi"
)

// AnimationDriverData holds the driver that advances every running animation in the world
type AnimationDriverData struct {
	Driver *anim.Driver
}

var AnimationDriver = donburi.NewComponentType[AnimationDriverData]()
