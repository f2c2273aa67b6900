package systems

import (
	"fmt"

	"github.com/automoto/propertyanimation/components"
	cfg "github.com/automoto/propertyanimation/config"
	"github.com/automoto/propertyanimation/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 8

// DrawHUD prints how many shower stars are falling in the bottom-left corner of the field.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	fieldEntry, ok := components.StarField.First(ecs.World)
	if !ok {
		return
	}
	fd := components.StarField.Get(fieldEntry)

	falling := 0
	components.Particle.Each(ecs.World, func(*donburi.Entry) { falling++ })
	label := fmt.Sprintf("falling: %d  landed: %d", falling, fd.Removed)
	text.Draw(screen, label, fonts.Small.Get(), hudMargin, screen.Bounds().Dy()-hudMargin, cfg.UI.TextIdle)
}
