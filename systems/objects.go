package systems

import (
	"github.com/automoto/propertyanimation/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStarField keeps every child's resolv object in step with its transform
func UpdateStarField(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil || obj.Space == nil {
			continue
		}
		t := components.Transform.Get(e)
		s := components.Sprite.Get(e)
		obj.X, obj.Y, obj.W, obj.H = t.Bounds(s.Width, s.Height)
		obj.Update()
	}
}

// RemoveChild detaches child from the star field and destroys it. It reports whether
// anything was removed; removing a destroyed child or a child of a torn-down field is a no-op.
func RemoveChild(ecs *ecs.ECS, child *donburi.Entry) bool {
	if child == nil || !child.Valid() {
		return false
	}

	if child.HasComponent(components.Object) {
		obj := components.Object.Get(child)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}

	if fieldEntry, ok := components.StarField.First(ecs.World); ok {
		fd := components.StarField.Get(fieldEntry)
		fd.Children--
		fd.Removed++
	}

	child.Remove()
	return true
}
