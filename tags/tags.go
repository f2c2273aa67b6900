package tags

import "github.com/yohamta/donburi"

var (
	Star      = donburi.NewTag().SetName("Star")
	Particle  = donburi.NewTag().SetName("Particle")
	StarField = donburi.NewTag().SetName("StarField")
)

// Resolv tags for star field children
const (
	ResolvStar     = "star"
	ResolvParticle = "particle"
)
