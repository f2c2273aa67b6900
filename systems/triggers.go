package systems

import (
	"log"

	"github.com/automoto/propertyanimation/anim"
	"github.com/automoto/propertyanimation/components"
	cfg "github.com/automoto/propertyanimation/config"
	"github.com/automoto/propertyanimation/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Each trigger builds one animation from the config tables, disables the control that
// fired it for as long as the animation runs, and starts it on the world's driver.
// A trigger returns nil when the world has nothing to animate.

// Rotater spins the star a full turn.
func Rotater(ecs *ecs.ECS, control anim.Control) anim.Animator {
	star, ok := heroStar(ecs)
	if !ok {
		return nil
	}
	c := cfg.Animations.Rotate
	track := anim.OfFloat(Rotation(star), c.From, c.To)
	track.SetDuration(c.Duration)
	return startTriggered(ecs, track, control)
}

// Translater moves the star right and back.
func Translater(ecs *ecs.ECS, control anim.Control) anim.Animator {
	star, ok := heroStar(ecs)
	if !ok {
		return nil
	}
	c := cfg.Animations.Translate
	prop := TranslationX(star)
	from := prop.Get()
	track := anim.OfFloat(prop, from, from+c.Distance).
		SetRepeatCount(c.RepeatCount).
		SetRepeatMode(anim.Reverse)
	return startTriggered(ecs, track, control)
}

// Scaler grows the star on both axes at once and shrinks it back.
func Scaler(ecs *ecs.ECS, control anim.Control) anim.Animator {
	star, ok := heroStar(ecs)
	if !ok {
		return nil
	}
	c := cfg.Animations.Scale
	track := anim.OfProperties(
		anim.Float(ScaleX(star), c.From, c.To),
		anim.Float(ScaleY(star), c.From, c.To),
	).SetRepeatCount(c.RepeatCount).SetRepeatMode(anim.Reverse)
	return startTriggered(ecs, track, control)
}

// Fader fades the star out and back in.
func Fader(ecs *ecs.ECS, control anim.Control) anim.Animator {
	star, ok := heroStar(ecs)
	if !ok {
		return nil
	}
	c := cfg.Animations.Fade
	track := anim.OfFloat(Alpha(star), c.From, c.To).
		SetRepeatCount(c.RepeatCount).
		SetRepeatMode(anim.Reverse)
	if c.Duration > 0 {
		track.SetDuration(c.Duration)
	}
	return startTriggered(ecs, track, control)
}

// Colorizer flashes the field background and back.
func Colorizer(ecs *ecs.ECS, control anim.Control) anim.Animator {
	field, ok := components.StarField.First(ecs.World)
	if !ok {
		log.Println("[colorize] no star field")
		return nil
	}
	c := cfg.Animations.Colorize
	track := anim.OfArgb(BackgroundColor(field), c.From, c.To).
		SetRepeatCount(c.RepeatCount).
		SetRepeatMode(anim.Reverse)
	track.SetDuration(c.Duration)
	return startTriggered(ecs, track, control)
}

func startTriggered(ecs *ecs.ECS, a anim.Animator, control anim.Control) anim.Animator {
	if control != nil {
		anim.DisableDuring(a, control)
	}
	if !StartAnimation(ecs, a) {
		return nil
	}
	PlaySFX(ecs, cfg.SoundTrigger)
	return a
}

func heroStar(ecs *ecs.ECS) (*donburi.Entry, bool) {
	star, ok := tags.Star.First(ecs.World)
	if !ok {
		log.Println("[trigger] no star to animate")
	}
	return star, ok
}
