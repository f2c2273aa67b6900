package factory

import (
	"github.com/automoto/propertyanimation/archetypes"
	"github.com/automoto/propertyanimation/components"
	cfg "github.com/automoto/propertyanimation/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStarField creates the container of every star, sized width x height, with a
// resolv space that tracks its children.
func CreateStarField(ecs *ecs.ECS, width, height int) *donburi.Entry {
	field := archetypes.StarField.Spawn(ecs)
	cell := cfg.StarField.CellSize
	components.StarField.SetValue(field, components.StarFieldData{
		Width:      float64(width),
		Height:     float64(height),
		Background: cfg.StarField.Background,
		Space:      resolv.NewSpace(width, height, cell, cell),
	})
	return field
}

// attach registers child in the field's space. The child must already have its
// Transform and Sprite set.
func attach(field, child *donburi.Entry, tag string) {
	fd := components.StarField.Get(field)
	t := components.Transform.Get(child)
	s := components.Sprite.Get(child)

	x, y, w, h := t.Bounds(s.Width, s.Height)
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = child
	fd.Space.Add(obj)
	components.Object.SetValue(child, components.ObjectData{Object: obj})

	fd.Children++
}
