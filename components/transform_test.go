package components

import "testing"

func TestTransformBounds(t *testing.T) {
	tests := []struct {
		name       string
		transform  TransformData
		x, y, w, h float64
	}{
		{"identity", NewTransform(10, 20), 10, 20, 72, 72},
		{"translated", TransformData{Left: 10, Top: 20, TranslationX: 5, TranslationY: -30, ScaleX: 1, ScaleY: 1}, 15, -10, 72, 72},
		{"scaled about center", TransformData{ScaleX: 2, ScaleY: 0.5}, -36, 18, 144, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := tt.transform.Bounds(72, 72)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("got (%v,%v %vx%v), want (%v,%v %vx%v)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestNewTransformIsIdentity(t *testing.T) {
	tr := NewTransform(3, 4)
	if tr.ScaleX != 1 || tr.ScaleY != 1 || tr.Alpha != 1 || tr.Rotation != 0 {
		t.Errorf("expected identity transform, got %+v", tr)
	}
}
