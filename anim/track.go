package anim

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
)

// DefaultDuration is used by tracks that never had SetDuration called.
const DefaultDuration = 300 * time.Millisecond

// Infinite repeats a track until the driver shuts down.
const Infinite = -1

// RepeatMode decides how a repeating track plays its odd iterations.
type RepeatMode int

const (
	// Restart plays every iteration from start to end
	Restart RepeatMode = iota
	// Reverse plays odd iterations from end back to start
	Reverse
)

// Animator is a started-once, frame-driven animation.
type Animator interface {
	Start()
	// Update advances the animation by dt and reports whether it has finished.
	Update(dt time.Duration) bool
	Running() bool
	AddListener(l Listener)
	SetDuration(d time.Duration)

	// end stops a running animation where it is and fires its end listeners.
	end()
}

// Holder binds one property to the values it animates between.
type Holder interface {
	// begin resolves start values and builds the tween for one iteration.
	begin(curve Curve, durationMs float32)
	// apply sets the property for the given time into the iteration.
	apply(ms float32)
}

type floatHolder struct {
	prop   Property
	values []float32
	tween  *gween.Tween
}

// Float animates p to values[0] from its current value, or from values[0] to values[1].
func Float(p Property, values ...float32) Holder {
	return &floatHolder{prop: p, values: values}
}

func (h *floatHolder) begin(curve Curve, durationMs float32) {
	var from, to float32
	switch len(h.values) {
	case 0:
		from = h.prop.Get()
		to = from
	case 1:
		from = h.prop.Get()
		to = h.values[0]
	default:
		from, to = h.values[0], h.values[len(h.values)-1]
	}
	h.tween = gween.New(from, to, durationMs, curve)
}

func (h *floatHolder) apply(ms float32) {
	v, _ := h.tween.Set(ms)
	h.prop.Set(v)
}

type argbHolder struct {
	prop     ColorProperty
	from, to color.RGBA
	tween    *gween.Tween
}

// Argb animates p from one color to another, interpolating each ARGB channel as an integer.
func Argb(p ColorProperty, from, to color.RGBA) Holder {
	return &argbHolder{prop: p, from: from, to: to}
}

func (h *argbHolder) begin(curve Curve, durationMs float32) {
	h.tween = gween.New(0, 1, durationMs, curve)
}

func (h *argbHolder) apply(ms float32) {
	f, _ := h.tween.Set(ms)
	h.prop.Set(LerpARGB(h.from, h.to, f))
}

// LerpARGB blends two colors channel by channel, truncating toward the start color.
func LerpARGB(from, to color.RGBA, f float32) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(int(a) + int(f*float32(int(b)-int(a))))
	}
	return color.RGBA{
		R: lerp(from.R, to.R),
		G: lerp(from.G, to.G),
		B: lerp(from.B, to.B),
		A: lerp(from.A, to.A),
	}
}

// Track animates one or more property holders in lockstep.
type Track struct {
	listeners

	holders     []Holder
	duration    time.Duration
	repeatCount int
	mode        RepeatMode
	curve       Curve

	elapsed time.Duration
	running bool
}

// OfProperties builds a track that animates every holder in parallel.
func OfProperties(holders ...Holder) *Track {
	return &Track{
		holders:  holders,
		duration: DefaultDuration,
		curve:    AccelerateDecelerate,
	}
}

// OfFloat is shorthand for a track over a single float property.
func OfFloat(p Property, values ...float32) *Track {
	return OfProperties(Float(p, values...))
}

// OfArgb is shorthand for a track over a single color property.
func OfArgb(p ColorProperty, from, to color.RGBA) *Track {
	return OfProperties(Argb(p, from, to))
}

// SetDuration sets the length of one iteration. Negative durations count as zero.
func (t *Track) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.duration = d
}

// Duration returns the length of one iteration.
func (t *Track) Duration() time.Duration {
	return t.duration
}

// SetRepeatCount sets how many times the track replays after the first run (Infinite for no end).
func (t *Track) SetRepeatCount(n int) *Track {
	t.repeatCount = n
	return t
}

// SetRepeatMode sets how repeats are played.
func (t *Track) SetRepeatMode(m RepeatMode) *Track {
	t.mode = m
	return t
}

// SetCurve replaces the default curve.
func (t *Track) SetCurve(c Curve) *Track {
	if c != nil {
		t.curve = c
	}
	return t
}

// Running reports whether the track has started and not yet ended.
func (t *Track) Running() bool {
	return t.running
}

// Start resolves start values, applies them and fires start listeners.
func (t *Track) Start() {
	if t.running {
		return
	}
	t.running = true
	t.elapsed = 0
	ms := durationMs(t.duration)
	for _, h := range t.holders {
		h.begin(t.curve, ms)
	}
	t.applyAt(0, 0)
	t.fireStart()
}

// Update advances the track and applies the new values.
func (t *Track) Update(dt time.Duration) bool {
	if !t.running {
		return true
	}
	if dt > 0 {
		t.elapsed += dt
	}

	if t.repeatCount >= 0 {
		total := t.duration * time.Duration(t.repeatCount+1)
		if t.elapsed >= total {
			t.applyAt(t.repeatCount, t.duration)
			t.end()
			return true
		}
	}

	if t.duration <= 0 {
		t.applyAt(0, 0)
		t.end()
		return true
	}

	iteration := int(t.elapsed / t.duration)
	t.applyAt(iteration, t.elapsed-time.Duration(iteration)*t.duration)
	return false
}

func (t *Track) end() {
	if !t.running {
		return
	}
	t.running = false
	t.fireEnd()
}

func (t *Track) applyAt(iteration int, within time.Duration) {
	reversed := t.mode == Reverse && iteration%2 == 1
	if reversed {
		within = t.duration - within
	}
	ms := durationMs(within)
	if within >= t.duration && !(reversed && t.duration == 0) {
		// past the end so zero-length tweens land on their end value
		ms = durationMs(t.duration) + 1
	}
	for _, h := range t.holders {
		h.apply(ms)
	}
}

func durationMs(d time.Duration) float32 {
	return float32(d) / float32(time.Millisecond)
}
