package factory

import (
	"github.com/automoto/propertyanimation/archetypes"
	"github.com/automoto/propertyanimation/components"
	"github.com/automoto/propertyanimation/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStar places the animated star in the middle of the field.
func CreateStar(ecs *ecs.ECS, field *donburi.Entry, sprite components.SpriteData) *donburi.Entry {
	star := archetypes.Star.Spawn(ecs)
	fd := components.StarField.Get(field)

	left := (fd.Width - sprite.Width) / 2
	top := (fd.Height - sprite.Height) / 2
	components.Transform.SetValue(star, components.NewTransform(left, top))
	components.Sprite.SetValue(star, sprite)

	attach(field, star, tags.ResolvStar)
	return star
}

// CreateParticle attaches a shower star to the field. Its layout position is chosen so
// that TranslationX/TranslationY address the top-left corner of the scaled sprite.
func CreateParticle(ecs *ecs.ECS, field *donburi.Entry, sprite components.SpriteData, p components.ParticleData) *donburi.Entry {
	particle := archetypes.Particle.Spawn(ecs)

	w, h := sprite.Width*p.Scale, sprite.Height*p.Scale
	t := components.NewTransform((w-sprite.Width)/2, (h-sprite.Height)/2)
	t.ScaleX = p.Scale
	t.ScaleY = p.Scale
	t.TranslationX = p.StartX
	t.TranslationY = -h
	components.Transform.SetValue(particle, t)
	components.Sprite.SetValue(particle, sprite)
	components.Particle.SetValue(particle, p)

	attach(field, particle, tags.ResolvParticle)
	return particle
}
