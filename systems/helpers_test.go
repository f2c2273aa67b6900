package systems

import (
	"math"
	"testing"

	"github.com/automoto/propertyanimation/components"
	cfg "github.com/automoto/propertyanimation/config"
	"github.com/automoto/propertyanimation/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testFieldWidth  = 480
	testFieldHeight = 752
)

// newTestWorld builds a world with a star field and a hero star whose sprite has no image.
func newTestWorld(t *testing.T, withDriver bool) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	cfg.Animations = cfg.DefaultAnimations()

	e := ecs.NewECS(donburi.NewWorld())
	if withDriver {
		factory.CreateAnimationDriver(e)
	}
	field := factory.CreateStarField(e, testFieldWidth, testFieldHeight)
	star := factory.CreateStar(e, field, components.SpriteData{
		Width:  float64(cfg.StarField.StarWidth),
		Height: float64(cfg.StarField.StarHeight),
	})
	return e, field, star
}

func countParticles(e *ecs.ECS) int {
	n := 0
	components.Particle.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

// sequenceRand replays fixed values, then repeats the last one.
type sequenceRand struct {
	values []float64
	calls  int
}

func (s *sequenceRand) Float64() float64 {
	i := s.calls
	if i >= len(s.values) {
		i = len(s.values) - 1
	}
	s.calls++
	return s.values[i]
}

type fakeControl struct {
	enabled bool
	toggles int
}

func (c *fakeControl) SetEnabled(enabled bool) {
	c.enabled = enabled
	c.toggles++
}
