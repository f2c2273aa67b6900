package ui

import (
	"log"

	"github.com/automoto/propertyanimation/anim"
	cfg "github.com/automoto/propertyanimation/config"
	"github.com/automoto/propertyanimation/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Action is one button of the bar. Run receives the button as the control to disable
// while whatever it starts is running.
type Action struct {
	Label string
	Run   func(control anim.Control)
}

// WidgetControl lets an animation enable and disable an ebitenui widget
type WidgetControl struct {
	W *widget.Widget
}

func (c WidgetControl) SetEnabled(enabled bool) {
	if c.W == nil {
		return
	}
	c.W.Disabled = !enabled
}

// Enabled reports whether the widget currently accepts input
func (c WidgetControl) Enabled() bool {
	return c.W != nil && !c.W.Disabled
}

// ControlsUI holds the ebitenui button bar across the top of the screen
type ControlsUI struct {
	UI *ebitenui.UI

	actions  []Action
	controls []WidgetControl
	face     text.Face
}

// NewControlsUI builds one button per action, laid out left to right
func NewControlsUI(actions []Action) *ControlsUI {
	cui := &ControlsUI{
		actions: actions,
		face:    fonts.Button.Face(),
	}
	cui.buildUI()
	return cui
}

func (cui *ControlsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.BarBackground)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.BarPadding)),
			widget.RowLayoutOpts.Spacing(cfg.UI.ButtonSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
			widget.WidgetOpts.MinSize(cfg.C.Width, cfg.StarField.Top),
		),
	)

	cui.controls = make([]WidgetControl, len(cui.actions))
	for i := range cui.actions {
		button := cui.buildButton(i)
		cui.controls[i] = WidgetControl{W: button.GetWidget()}
		bar.AddChild(button)
	}

	rootContainer.AddChild(bar)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ControlsUI) buildButton(i int) *widget.Button {
	idx := i // Capture for closure
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.ButtonWidth, cfg.UI.ButtonHeight),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(cui.actions[i].Label, &cui.face, &widget.ButtonTextColor{
			Idle:     cfg.UI.TextIdle,
			Hover:    cfg.UI.TextIdle,
			Pressed:  cfg.UI.TextIdle,
			Disabled: cfg.UI.TextDisabled,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cui.Press(idx)
		}),
	)
}

// Press runs the i-th action as if its button had been clicked. Disabled buttons ignore it.
func (cui *ControlsUI) Press(i int) bool {
	if i < 0 || i >= len(cui.actions) {
		return false
	}
	c := cui.controls[i]
	if !c.Enabled() {
		return false
	}
	log.Printf("[ui] %s", cui.actions[i].Label)
	cui.actions[i].Run(c)
	return true
}

// Control returns the control of the i-th button
func (cui *ControlsUI) Control(i int) WidgetControl {
	return cui.controls[i]
}

func (cui *ControlsUI) Update() {
	cui.UI.Update()
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.UI.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.UI.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.UI.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.UI.ButtonDisabled),
	}
}
