package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/propertyanimation/components"
	cfg "github.com/automoto/propertyanimation/config"
	"github.com/automoto/propertyanimation/fonts"
	"github.com/automoto/propertyanimation/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug flips the overlay when its action is pressed. Must run after UpdateInput.
func UpdateDebug(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	if GetAction(components.Input.Get(inputEntry), cfg.ActionToggleDebug).JustPressed {
		d := GetOrCreateDebug(ecs)
		d.Enabled = !d.Enabled
	}
}

// GetOrCreateDebug returns the singleton Debug component, creating if needed
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
	}
	return components.Debug.Get(entry)
}

// DrawDebug outlines every object in the star field's space
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Enabled {
		return
	}
	fieldEntry, ok := components.StarField.First(ecs.World)
	if !ok {
		return
	}
	fd := components.StarField.Get(fieldEntry)
	top := float64(screen.Bounds().Dy()) - fd.Height

	objects := fd.Space.Objects()
	for _, obj := range objects {
		x := obj.X
		y := obj.Y + top

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvStar) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		}

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}

	label := fmt.Sprintf("objects: %d  animations: %d  tps: %.0f", len(objects), RunningAnimations(ecs), ebiten.ActualTPS())
	text.Draw(screen, label, fonts.Small.Get(), hudMargin, int(top)+hudMargin*2, cfg.UI.TextIdle)
}
