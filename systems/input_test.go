package systems

import (
	"testing"

	"github.com/automoto/propertyanimation/components"
	cfg "github.com/automoto/propertyanimation/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// holding reports every binding that lists key as pressed.
func holding(keys ...ebiten.Key) func(cfg.InputBinding) bool {
	return func(b cfg.InputBinding) bool {
		for _, bound := range b.Keys {
			for _, k := range keys {
				if bound == k {
					return true
				}
			}
		}
		return false
	}
}

func TestPollInputJustPressed(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	PollInput(e, holding(ebiten.KeyDigit1, ebiten.KeySpace))
	got := JustPressedActions(e)
	if len(got) != 2 || got[0] != cfg.ActionRotate || got[1] != cfg.ActionShower {
		t.Fatalf("expected rotate and shower, got %v", got)
	}

	// still held: no new presses
	PollInput(e, holding(ebiten.KeyDigit1, ebiten.KeySpace))
	if got := JustPressedActions(e); len(got) != 0 {
		t.Errorf("expected no presses while held, got %v", got)
	}

	PollInput(e, holding())
	entry, _ := components.Input.First(e.World)
	if !GetAction(components.Input.Get(entry), cfg.ActionRotate).JustReleased {
		t.Error("expected rotate to be just released")
	}
}

func TestJustPressedActionsWithoutInput(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	if got := JustPressedActions(e); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestUpdateDebugToggles(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	PollInput(e, holding(ebiten.KeyF3))
	UpdateDebug(e)
	if !GetOrCreateDebug(e).Enabled {
		t.Fatal("expected debug overlay on")
	}

	PollInput(e, holding(ebiten.KeyF3))
	UpdateDebug(e)
	if !GetOrCreateDebug(e).Enabled {
		t.Error("holding the key should not toggle again")
	}

	PollInput(e, holding())
	PollInput(e, holding(ebiten.KeyF3))
	UpdateDebug(e)
	if GetOrCreateDebug(e).Enabled {
		t.Error("expected debug overlay off")
	}
}

func TestButtonIndex(t *testing.T) {
	if cfg.ActionRotate.ButtonIndex() != 0 || cfg.ActionShower.ButtonIndex() != 5 {
		t.Error("actions should map onto buttons in bar order")
	}
	if cfg.ActionNone.ButtonIndex() != -1 || cfg.ActionToggleDebug.ButtonIndex() != -1 {
		t.Error("non-button actions should have no index")
	}
}

func TestUpdateStarFieldSyncsObjects(t *testing.T) {
	e, _, star := newTestWorld(t, true)
	tr := components.Transform.Get(star)
	tr.TranslationX = 50
	tr.ScaleX, tr.ScaleY = 2, 2

	UpdateStarField(e)
	obj := components.Object.Get(star)
	x, y, w, h := tr.Bounds(72, 72)
	if obj.X != x || obj.Y != y || obj.W != w || obj.H != h {
		t.Errorf("object at (%f,%f %fx%f), want (%f,%f %fx%f)", obj.X, obj.Y, obj.W, obj.H, x, y, w, h)
	}
}
