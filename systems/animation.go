package systems

import (
	"log"
	"time"

	"github.com/automoto/propertyanimation/anim"
	"github.com/automoto/propertyanimation/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every running animation by one tick
func UpdateAnimations(ecs *ecs.ECS) {
	AdvanceAnimations(ecs, frameDuration())
}

// AdvanceAnimations advances every running animation by dt
func AdvanceAnimations(ecs *ecs.ECS, dt time.Duration) {
	if d := driver(ecs); d != nil {
		d.Update(dt)
	}
}

// StartAnimation hands a to the world's driver. Returns false if the world has none.
func StartAnimation(ecs *ecs.ECS, a anim.Animator) bool {
	d := driver(ecs)
	if d == nil {
		log.Println("[anim] no animation driver in world, animation dropped")
		return false
	}
	d.Start(a)
	return true
}

// ShutdownAnimations ends every animation in flight, e.g. when the scene is torn down
func ShutdownAnimations(ecs *ecs.ECS) {
	if d := driver(ecs); d != nil {
		d.Shutdown()
	}
}

func driver(ecs *ecs.ECS) *anim.Driver {
	entry, ok := components.AnimationDriver.First(ecs.World)
	if !ok {
		return nil
	}
	return components.AnimationDriver.Get(entry).Driver
}

func frameDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

// RunningAnimations is the number of animations the world's driver is advancing
func RunningAnimations(ecs *ecs.ECS) int {
	if d := driver(ecs); d != nil {
		return d.Len()
	}
	return 0
}
