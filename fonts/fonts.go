package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Countdown FontName = "countdown" // 3-2-1-GO
	Banner    FontName = "banner"    // game over title
	Title     FontName = "title"
	Score     FontName = "score"
	Subtitle  FontName = "subtitle"
	Body      FontName = "body"
	Button    FontName = "button"
	Label     FontName = "label"
	Small     FontName = "small"
	Tiny      FontName = "tiny" // instructions
)

var sizes = map[FontName]float64{
	Countdown: 120,
	Banner:    50,
	Title:     48,
	Score:     30,
	Subtitle:  28,
	Body:      24,
	Button:    22,
	Label:     20,
	Small:     18,
	Tiny:      16,
}

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadAll registers every face the game draws with, parsed from ttf.
// A nil ttf uses the bundled Go Regular font.
func LoadAll(ttf []byte) error {
	if ttf == nil {
		ttf = goregular.TTF
	}
	for name, size := range sizes {
		if err := LoadFontWithSize(name, ttf, size); err != nil {
			return err
		}
	}
	return nil
}

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
