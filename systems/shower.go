package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/propertyanimation/anim"
	"github.com/automoto/propertyanimation/components"
	cfg "github.com/automoto/propertyanimation/config"
	"github.com/automoto/propertyanimation/systems/factory"
	"github.com/automoto/propertyanimation/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RandSource yields uniform floats in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// ShowerController spawns falling stars into the star field
type ShowerController struct {
	ecs  *ecs.ECS
	rand RandSource
}

// NewShowerController creates a controller drawing from r, or from the process-wide
// math/rand source when r is nil.
func NewShowerController(ecs *ecs.ECS, r RandSource) *ShowerController {
	if r == nil {
		r = globalRand{}
	}
	return &ShowerController{ecs: ecs, rand: r}
}

// Spawn adds one star above the field and lets it fall and spin to below the bottom edge,
// removing it once both motions finish. It returns the new particle, or nil when there is
// no field to spawn into.
func (sc *ShowerController) Spawn() *donburi.Entry {
	fieldEntry, ok := components.StarField.First(sc.ecs.World)
	if !ok {
		log.Println("[shower] no star field")
		return nil
	}
	field := components.StarField.Get(fieldEntry)
	sprite := sc.template()
	p := sc.draw(field.Width, sprite)

	particle := factory.CreateParticle(sc.ecs, fieldEntry, sprite, p)
	h := sprite.Height * p.Scale

	mover := anim.OfFloat(TranslationY(particle), float32(-h), float32(field.Height+h)).
		SetCurve(anim.Accelerate)
	rotator := anim.OfFloat(Rotation(particle), 0, float32(p.RotationTarget)).
		SetCurve(anim.Linear)

	set := anim.Together(mover, rotator)
	set.SetDuration(p.Duration)
	set.AddListener(anim.Listener{
		OnEnd: func() { sc.remove(particle) },
	})

	if !StartAnimation(sc.ecs, set) {
		sc.remove(particle)
		return nil
	}
	PlaySFX(sc.ecs, cfg.SoundShower)
	return particle
}

// draw picks scale, horizontal start, rotation target and duration, in that order.
func (sc *ShowerController) draw(fieldWidth float64, sprite components.SpriteData) components.ParticleData {
	c := cfg.Animations.Shower

	scale := min(c.MinScale+sc.rand.Float64()*(c.MaxScale-c.MinScale), c.MaxScale)
	w := sprite.Width * scale
	startX := sc.rand.Float64()*fieldWidth - w/2
	rotation := sc.rand.Float64() * c.MaxRotation
	span := c.MaxDuration - c.MinDuration
	duration := c.MinDuration + time.Duration(sc.rand.Float64()*float64(span))

	return components.ParticleData{
		Scale:          scale,
		StartX:         startX,
		RotationTarget: rotation,
		Duration:       duration,
	}
}

// template returns the sprite of the star in the field, falling back to the configured size.
func (sc *ShowerController) template() components.SpriteData {
	if star, ok := tags.Star.First(sc.ecs.World); ok {
		return *components.Sprite.Get(star)
	}
	return components.SpriteData{
		Width:  float64(cfg.StarField.StarWidth),
		Height: float64(cfg.StarField.StarHeight),
	}
}

func (sc *ShowerController) remove(particle *donburi.Entry) {
	if !particle.Valid() {
		return
	}
	p := components.Particle.Get(particle)
	if p.Removed {
		return
	}
	p.Removed = true
	RemoveChild(sc.ecs, particle)
}
