package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/propertyanimation/anim"
	"github.com/automoto/propertyanimation/assets"
	"github.com/automoto/propertyanimation/components"
	cfg "github.com/automoto/propertyanimation/config"
	"github.com/automoto/propertyanimation/systems"
	"github.com/automoto/propertyanimation/systems/factory"
	"github.com/automoto/propertyanimation/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StarFieldScene shows the star, the star field and the button bar that animates them
type StarFieldScene struct {
	ecs      *ecs.ECS
	controls *ui.ControlsUI
	shower   *systems.ShowerController
	rand     systems.RandSource
	once     sync.Once
}

// NewStarFieldScene creates the scene. r feeds the shower; nil uses math/rand.
func NewStarFieldScene(r systems.RandSource) *StarFieldScene {
	return &StarFieldScene{rand: r}
}

func (ss *StarFieldScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
	ss.controls.Update()

	// Keyboard and gamepad shortcuts press the same buttons
	for _, action := range systems.JustPressedActions(ss.ecs) {
		if i := action.ButtonIndex(); i >= 0 {
			ss.controls.Press(i)
		}
	}
}

func (ss *StarFieldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
	ss.controls.UI.Draw(screen)
}

// Teardown ends every animation still running so no button is left disabled.
func (ss *StarFieldScene) Teardown() {
	if ss.ecs == nil {
		return
	}
	systems.ShutdownAnimations(ss.ecs)
}

func (ss *StarFieldScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	ss.ecs.AddSystem(systems.UpdateAudio)
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.UpdateDebug)
	ss.ecs.AddSystem(systems.UpdateAnimations)
	ss.ecs.AddSystem(systems.UpdateStarField)

	ss.ecs.AddRenderer(cfg.Default, systems.DrawStarField)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateAnimationDriver(ss.ecs)
	field := factory.CreateStarField(ss.ecs, cfg.C.Width, cfg.FieldHeight())
	factory.CreateStar(ss.ecs, field, components.SpriteData{
		Image:  assets.StarImage(),
		Width:  float64(cfg.StarField.StarWidth),
		Height: float64(cfg.StarField.StarHeight),
	})

	ss.shower = systems.NewShowerController(ss.ecs, ss.rand)
	ss.controls = ui.NewControlsUI(ss.actions())
}

// actions are in cfg.ActionID order so shortcuts map onto buttons by index
func (ss *StarFieldScene) actions() []ui.Action {
	trigger := func(t func(*ecs.ECS, anim.Control) anim.Animator) func(anim.Control) {
		return func(c anim.Control) { t(ss.ecs, c) }
	}
	return []ui.Action{
		{Label: "ROTATE", Run: trigger(systems.Rotater)},
		{Label: "TRANSLATE", Run: trigger(systems.Translater)},
		{Label: "SCALE", Run: trigger(systems.Scaler)},
		{Label: "FADE", Run: trigger(systems.Fader)},
		{Label: "COLORIZE", Run: trigger(systems.Colorizer)},
		// Stars pile up, so the shower button stays enabled
		{Label: "SHOWER", Run: func(anim.Control) { ss.shower.Spawn() }},
	}
}
