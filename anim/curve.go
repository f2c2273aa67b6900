package anim

import "github.com/tanema/gween/ease"

// Curve maps elapsed time to progress between two values (gween easing signature).
type Curve = ease.TweenFunc

var (
	// Linear advances at a constant rate
	Linear Curve = ease.Linear
	// Accelerate starts at rest and speeds up until the end (falling objects)
	Accelerate Curve = ease.InQuad
	// AccelerateDecelerate speeds up then slows down. Default for tracks.
	AccelerateDecelerate Curve = ease.InOutSine
)
