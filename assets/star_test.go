package assets

import (
	"image/color"
	"testing"
)

func TestRasterizeStar(t *testing.T) {
	gold := color.RGBA{255, 214, 0, 255}
	img := RasterizeStar(64, 5, 0.45, gold)

	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("expected 64x64, got %v", img.Bounds())
	}
	if got := img.RGBAAt(32, 32); got.A < 250 || got.R < 250 || got.B > 5 {
		t.Errorf("expected center filled with %v, got %v", gold, got)
	}
	// just under the top tip
	if got := img.RGBAAt(32, 3); got.A == 0 {
		t.Error("expected the top tip to be filled")
	}
	if got := img.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("expected corner empty, got %v", got)
	}
	// notch between the two lower tips
	if got := img.RGBAAt(32, 62); got.A != 0 {
		t.Errorf("expected bottom center empty, got %v", got)
	}
}

func TestRasterizeStarDegenerate(t *testing.T) {
	img := RasterizeStar(16, 1, 0.5, color.White)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if img.RGBAAt(x, y).A != 0 {
				t.Fatalf("expected empty image for a one-point star, pixel (%d,%d) set", x, y)
			}
		}
	}
}
