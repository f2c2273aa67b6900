package factory

import (
	"github.com/automoto/propertyanimation/anim"
	"github.com/automoto/propertyanimation/archetypes"
	"github.com/automoto/propertyanimation/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAnimationDriver creates the singleton that owns every running animation.
func CreateAnimationDriver(ecs *ecs.ECS) *donburi.Entry {
	driver := archetypes.AnimationDriver.Spawn(ecs)
	components.AnimationDriver.SetValue(driver, components.AnimationDriverData{
		Driver: anim.NewDriver(),
	})
	return driver
}
