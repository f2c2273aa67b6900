package ui

import (
	"testing"

	"github.com/automoto/propertyanimation/anim"
	"github.com/ebitenui/ebitenui/widget"
)

func newTestControls(actions ...Action) *ControlsUI {
	cui := &ControlsUI{actions: actions}
	for range actions {
		cui.controls = append(cui.controls, WidgetControl{W: widget.NewWidget()})
	}
	return cui
}

func TestWidgetControlToggles(t *testing.T) {
	c := WidgetControl{W: widget.NewWidget()}
	if !c.Enabled() {
		t.Fatal("new widget should be enabled")
	}
	c.SetEnabled(false)
	if !c.W.Disabled || c.Enabled() {
		t.Error("expected widget disabled")
	}
	c.SetEnabled(true)
	if c.W.Disabled {
		t.Error("expected widget enabled again")
	}

	var empty WidgetControl
	empty.SetEnabled(true)
	if empty.Enabled() {
		t.Error("control without a widget should never report enabled")
	}
}

func TestPressRunsAction(t *testing.T) {
	var got anim.Control
	runs := 0
	cui := newTestControls(Action{Label: "ROTATE", Run: func(c anim.Control) {
		runs++
		got = c
	}})

	if !cui.Press(0) {
		t.Fatal("expected press to run")
	}
	if runs != 1 {
		t.Errorf("expected 1 run, got %d", runs)
	}
	if got != cui.Control(0) {
		t.Error("expected action to receive its own button control")
	}
	if cui.Press(1) || cui.Press(-1) {
		t.Error("out of range press should be ignored")
	}
}

func TestPressIgnoredWhileAnimating(t *testing.T) {
	box := float32(0)
	prop := anim.Property{Get: func() float32 { return box }, Set: func(v float32) { box = v }}
	var running anim.Animator
	d := anim.NewDriver()

	runs := 0
	cui := newTestControls(Action{Label: "TRANSLATE", Run: func(c anim.Control) {
		runs++
		running = anim.DisableDuring(anim.OfFloat(prop, 0, 1), c)
		d.Start(running)
	}})

	cui.Press(0)
	if cui.Press(0) {
		t.Error("press should be ignored while the button is disabled")
	}
	d.Update(anim.DefaultDuration)
	if running.Running() {
		t.Fatal("expected animation to finish")
	}
	if !cui.Press(0) {
		t.Error("press should run again once the animation ended")
	}
	if runs != 2 {
		t.Errorf("expected 2 runs, got %d", runs)
	}
}
