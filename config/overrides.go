package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// AnimationOverrides is the YAML form of AnimationsConfig. Every field is optional;
// durations are milliseconds and colors are "#rrggbb" hex strings.
//
// Example:
//
//	rotate:
//	  durationMs: 1500
//	colorize:
//	  to: "#3050ff"
//	shower:
//	  maxDurationMs: 3000
type AnimationOverrides struct {
	Rotate *struct {
		From       *float32 `yaml:"from"`
		To         *float32 `yaml:"to"`
		DurationMs *int     `yaml:"durationMs"`
	} `yaml:"rotate"`

	Translate *struct {
		Distance    *float32 `yaml:"distance"`
		RepeatCount *int     `yaml:"repeatCount"`
	} `yaml:"translate"`

	Scale *struct {
		From        *float32 `yaml:"from"`
		To          *float32 `yaml:"to"`
		RepeatCount *int     `yaml:"repeatCount"`
	} `yaml:"scale"`

	Fade *struct {
		From        *float32 `yaml:"from"`
		To          *float32 `yaml:"to"`
		DurationMs  *int     `yaml:"durationMs"`
		RepeatCount *int     `yaml:"repeatCount"`
	} `yaml:"fade"`

	Colorize *struct {
		From        *string `yaml:"from"`
		To          *string `yaml:"to"`
		DurationMs  *int    `yaml:"durationMs"`
		RepeatCount *int    `yaml:"repeatCount"`
	} `yaml:"colorize"`

	Shower *struct {
		MinScale      *float64 `yaml:"minScale"`
		MaxScale      *float64 `yaml:"maxScale"`
		MaxRotation   *float64 `yaml:"maxRotation"`
		MinDurationMs *int     `yaml:"minDurationMs"`
		MaxDurationMs *int     `yaml:"maxDurationMs"`
	} `yaml:"shower"`
}

// LoadAnimationOverrides reads a YAML override file and merges it over base.
// The merged result is validated before it is returned.
func LoadAnimationOverrides(path string, base AnimationsConfig) (AnimationsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read animation overrides: %w", err)
	}
	return ParseAnimationOverrides(data, base)
}

// ParseAnimationOverrides merges YAML overrides over base.
func ParseAnimationOverrides(data []byte, base AnimationsConfig) (AnimationsConfig, error) {
	var o AnimationOverrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return base, fmt.Errorf("failed to parse animation overrides: %w", err)
	}

	merged, err := o.apply(base)
	if err != nil {
		return base, err
	}
	if err := merged.Validate(); err != nil {
		return base, fmt.Errorf("invalid animation overrides: %w", err)
	}
	return merged, nil
}

func (o *AnimationOverrides) apply(c AnimationsConfig) (AnimationsConfig, error) {
	if r := o.Rotate; r != nil {
		setFloat(&c.Rotate.From, r.From)
		setFloat(&c.Rotate.To, r.To)
		setMillis(&c.Rotate.Duration, r.DurationMs)
	}
	if t := o.Translate; t != nil {
		setFloat(&c.Translate.Distance, t.Distance)
		setInt(&c.Translate.RepeatCount, t.RepeatCount)
	}
	if s := o.Scale; s != nil {
		setFloat(&c.Scale.From, s.From)
		setFloat(&c.Scale.To, s.To)
		setInt(&c.Scale.RepeatCount, s.RepeatCount)
	}
	if f := o.Fade; f != nil {
		setFloat(&c.Fade.From, f.From)
		setFloat(&c.Fade.To, f.To)
		setMillis(&c.Fade.Duration, f.DurationMs)
		setInt(&c.Fade.RepeatCount, f.RepeatCount)
	}
	if col := o.Colorize; col != nil {
		if err := setColor(&c.Colorize.From, col.From); err != nil {
			return c, fmt.Errorf("colorize.from: %w", err)
		}
		if err := setColor(&c.Colorize.To, col.To); err != nil {
			return c, fmt.Errorf("colorize.to: %w", err)
		}
		setMillis(&c.Colorize.Duration, col.DurationMs)
		setInt(&c.Colorize.RepeatCount, col.RepeatCount)
	}
	if s := o.Shower; s != nil {
		setFloat64(&c.Shower.MinScale, s.MinScale)
		setFloat64(&c.Shower.MaxScale, s.MaxScale)
		setFloat64(&c.Shower.MaxRotation, s.MaxRotation)
		setMillis(&c.Shower.MinDuration, s.MinDurationMs)
		setMillis(&c.Shower.MaxDuration, s.MaxDurationMs)
	}
	return c, nil
}

// Validate checks that every range is well formed.
func (c AnimationsConfig) Validate() error {
	if c.Rotate.Duration < 0 || c.Fade.Duration < 0 || c.Colorize.Duration < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	for name, n := range map[string]int{
		"translate": c.Translate.RepeatCount,
		"scale":     c.Scale.RepeatCount,
		"fade":      c.Fade.RepeatCount,
		"colorize":  c.Colorize.RepeatCount,
	} {
		if n < 0 {
			return fmt.Errorf("%s repeatCount must not be negative, got %d", name, n)
		}
	}

	s := c.Shower
	if s.MinScale <= 0 || s.MinScale > s.MaxScale {
		return fmt.Errorf("shower scale range invalid: min(%.2f) max(%.2f)", s.MinScale, s.MaxScale)
	}
	if s.MaxRotation < 0 {
		return fmt.Errorf("shower maxRotation must not be negative, got %.1f", s.MaxRotation)
	}
	if s.MinDuration <= 0 || s.MinDuration > s.MaxDuration {
		return fmt.Errorf("shower duration range invalid: min(%v) max(%v)", s.MinDuration, s.MaxDuration)
	}
	return nil
}

func setFloat(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}

func setFloat64(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setMillis(dst *time.Duration, ms *int) {
	if ms != nil {
		*dst = time.Duration(*ms) * time.Millisecond
	}
}

func setColor(dst *color.RGBA, hex *string) error {
	if hex == nil {
		return nil
	}
	c, err := colorful.Hex(*hex)
	if err != nil {
		return err
	}
	r, g, b := c.RGB255()
	*dst = color.RGBA{R: r, G: g, B: b, A: 255}
	return nil
}
