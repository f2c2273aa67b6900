package archetypes

import (
	"github.com/automoto/propertyanimation/components"
	cfg "github.com/automoto/propertyanimation/config"
	"github.com/automoto/propertyanimation/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	AnimationDriver = newArchetype(
		components.AnimationDriver,
	)
	StarField = newArchetype(
		tags.StarField,
		components.StarField,
	)
	Star = newArchetype(
		tags.Star,
		components.Transform,
		components.Sprite,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Transform,
		components.Sprite,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
