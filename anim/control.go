package anim

// Control is anything that can be switched on and off while an animation runs,
// typically the button that triggered it.
type Control interface {
	SetEnabled(enabled bool)
}

// DisableDuring disables c when a starts and enables it again when a ends.
// It returns a so calls can be chained before handing the animation to a Driver.
func DisableDuring(a Animator, c Control) Animator {
	a.AddListener(Listener{
		OnStart: func() { c.SetEnabled(false) },
		OnEnd:   func() { c.SetEnabled(true) },
	})
	return a
}
