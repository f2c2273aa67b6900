package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ParticleData records the parameters a shower star was spawned with
type ParticleData struct {
	Scale          float64
	StartX         float64
	RotationTarget float64 // degrees
	Duration       time.Duration

	Removed bool
}

var Particle = donburi.NewComponentType[ParticleData]()
