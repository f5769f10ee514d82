package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flappy/inspector/fields"
	"github.com/pthm-cable/flappy/systems"
	"github.com/pthm-cable/flappy/view"
)

// Widget colors
var (
	ColorTrack   = rl.Color{R: 70, G: 62, B: 48, A: 255}
	ColorRise    = rl.Color{R: 115, G: 191, B: 46, A: 255}
	ColorFall    = rl.Color{R: 232, G: 97, B: 1, A: 255}
	ColorText    = rl.Color{R: 245, G: 240, B: 225, A: 255}
	ColorTextDim = rl.Color{R: 175, G: 168, B: 150, A: 255}
	ColorBird    = rl.Color{R: 248, G: 200, B: 40, A: 255}
)

const (
	rowHeight = 18
	valueX    = 80
	barWidth  = 120
	barHeight = 14
	tiltSize  = 40
)

func drawLabel(x, y int32, f fields.Field) int32 {
	rl.DrawText(fmt.Sprintf("%s: %s", f.Name, f.Text()), x, y, 14, ColorText)
	return rowHeight
}

// drawBar fills from the zero of the field's range to v. Negative values
// (rising, for velocity) fill left in the rise colour.
func drawBar(x, y int32, f fields.Field, v float32) int32 {
	rl.DrawText(f.Name, x, y, 14, ColorTextDim)

	bx := x + valueX
	rl.DrawRectangle(bx, y, barWidth, barHeight, ColorTrack)

	zero := int32(barWidth * f.Range.Zero())
	from, to := zero, int32(barWidth*f.Range.Ratio(v))
	fill := ColorFall
	if to < from {
		from, to = to, from
		fill = ColorRise
	}
	rl.DrawRectangle(bx+from, y, to-from, barHeight, fill)
	rl.DrawLine(bx+zero, y-2, bx+zero, y+barHeight+2, ColorText)

	rl.DrawText(f.Text(), bx+barWidth+5, y, 14, ColorTextDim)
	return rowHeight
}

// drawTilt draws the bird outline at the given angle between rays marking
// the ends of the field's range.
func drawTilt(x, y int32, f fields.Field, radians float32) int32 {
	cx := float32(x + valueX + tiltSize/2)
	cy := float32(y + tiltSize/2)

	rl.DrawText(f.Name, x, y+tiltSize/2-7, 14, ColorTextDim)

	center := rl.Vector2{X: cx, Y: cy}
	for _, a := range []float32{f.Range.Min, f.Range.Max} {
		end := rl.Vector2{
			X: cx + tiltSize/2*float32(math.Cos(float64(a))),
			Y: cy + tiltSize/2*float32(math.Sin(float64(a))),
		}
		rl.DrawLineEx(center, end, 1, ColorTextDim)
	}

	deg := radians * 180 / math.Pi
	rl.DrawRectanglePro(
		rl.Rectangle{X: cx, Y: cy, Width: 22, Height: 15},
		rl.Vector2{X: 11, Y: 7.5},
		deg,
		ColorBird,
	)

	rl.DrawText(fmt.Sprintf("%.0f deg", deg), x+valueX+tiltSize+5, y+tiltSize/2-7, 14, ColorTextDim)
	return tiltSize + 4
}

// drawField renders f with its widget and returns the height used.
func drawField(x, y int32, f fields.Field) int32 {
	v, ok := f.Float()
	if !ok {
		return drawLabel(x, y, f)
	}
	switch f.Widget {
	case fields.Bar:
		return drawBar(x, y, f, v)
	case fields.Tilt:
		return drawTilt(x, y, f, v)
	default:
		return drawLabel(x, y, f)
	}
}

// drawInputs renders one column per network input: the shaded node the
// network panel would show, the raw value and the feature name. It returns
// shades for reuse on the next frame.
func drawInputs(x, y int32, features systems.Features, norm view.InputNorm, shades []float32) []float32 {
	shades = norm.InputShades(features[:], shades)

	const colW = 56
	for i, s := range shades {
		cx := float32(x + int32(i)*colW + colW/2)
		cy := float32(y + 10)
		rl.DrawCircleV(rl.Vector2{X: cx, Y: cy}, 10, ColorText)
		rl.DrawCircleV(rl.Vector2{X: cx, Y: cy}, 7, rl.Color(view.ValueColor(s)))

		label := systems.FeatureLabels[i]
		rl.DrawText(label, int32(cx)-rl.MeasureText(label, 10)/2, y+24, 10, ColorTextDim)
		value := fmt.Sprintf("%.0f", features[i])
		rl.DrawText(value, int32(cx)-rl.MeasureText(value, 10)/2, y+36, 10, ColorText)
	}
	return shades
}
