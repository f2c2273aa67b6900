package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	textv2 "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Button FontName = "button"
	Small  FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face wraps the font for ebitenui and text/v2 users.
func (f FontName) Face() textv2.Face {
	return textv2.NewGoXFace(getFont(f))
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every font the demo uses from the bundled Go Regular face.
func LoadDefaults(buttonSize float64) error {
	for name, size := range map[FontName]float64{
		Button: buttonSize,
		Small:  10,
	} {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

// LoadFontWithSize parses a TrueType font and registers it under name.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
