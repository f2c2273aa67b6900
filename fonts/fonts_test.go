package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []FontName{Button, Small} {
		if name.Get() == nil {
			t.Errorf("font %s not registered", name)
		}
	}
	if Button.Get().Metrics().Height <= 0 {
		t.Error("expected a positive line height")
	}
	if Small.Face() == nil {
		t.Error("expected a text/v2 face")
	}
}

func TestLoadFontWithSizeRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
