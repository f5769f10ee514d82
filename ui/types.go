// Package ui draws the HUD, panels and overlays around the playfield and
// turns keyboard, mouse and touch input into game commands.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	Panel  rl.Color
	Border rl.Color
	Header rl.Color
	Text   rl.Color
	Dim    rl.Color
	Track  rl.Color
	Fill   rl.Color
	Hot    rl.Color // share bars at or above HotShare

	HotShare float32

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme uses the sand, pipe green and beak orange of the playfield.
func DefaultTheme() Theme {
	return Theme{
		Panel:          rl.Color{R: 222, G: 216, B: 149, A: 235},
		Border:         rl.Color{R: 83, G: 130, B: 44, A: 255},
		Header:         rl.Color{R: 83, G: 130, B: 44, A: 255},
		Text:           rl.Color{R: 60, G: 45, B: 30, A: 255},
		Dim:            rl.Color{R: 120, G: 105, B: 75, A: 255},
		Track:          rl.Color{R: 200, G: 190, B: 120, A: 255},
		Fill:           rl.Color{R: 115, G: 191, B: 46, A: 255},
		Hot:            rl.Color{R: 232, G: 97, B: 1, A: 255},
		HotShare:       0.5,
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
