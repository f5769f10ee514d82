// Package view holds the raylib-free geometry and colour math behind the
// network panel and the screen split.
package view

// Color has the same layout as rl.Color and converts with rl.Color(c).
type Color struct {
	R, G, B, A uint8
}

// ValueColor maps a value in [-1,1] to pure red for positive, pure blue for
// negative, with alpha |v|. Zero is fully transparent.
func ValueColor(v float32) Color {
	a := v
	if a < 0 {
		a = -a
	}
	if a > 1 {
		a = 1
	}
	c := Color{A: uint8(a * 255)}
	if v > 0 {
		c.R = 255
	}
	if v < 0 {
		c.B = 255
	}
	return c
}

// InputNorm scales node inputs before shading. Input 0 (distance to the
// pipe) is divided by Distance, every other input by Height.
type InputNorm struct {
	Distance float32
	Height   float32
}

// NewInputNorm returns the normalization for a playfield of the given size.
func NewInputNorm(width, height float32) InputNorm {
	return InputNorm{Distance: 0.4 * width, Height: height}
}

// Scale returns the divisor for input i.
func (n InputNorm) Scale(i int) float32 {
	if i == 0 {
		return n.Distance
	}
	return n.Height
}

// Shade returns the colour value of input i: 1 at zero, 0 at its scale.
func (n InputNorm) Shade(i int, v float32) float32 {
	return 1 - v/n.Scale(i)
}

// InputShades writes the shade of every input into dst, reusing its
// backing array when large enough. It applies to the input row of any
// level, not just the first.
func (n InputNorm) InputShades(inputs, dst []float32) []float32 {
	if cap(dst) < len(inputs) {
		dst = make([]float32, len(inputs))
	}
	dst = dst[:len(inputs)]
	for i, v := range inputs {
		dst[i] = n.Shade(i, v)
	}
	return dst
}

// NodeX spaces count nodes evenly across width, leaving a margin of one
// slot on each side.
func NodeX(i, count int, x, width float32) float32 {
	return x + float32(i+1)/float32(count+1)*width
}

// NodeRadius shrinks nodes as a row gets wider.
func NodeRadius(width float32, count int) float32 {
	return width * 0.075 / float32(count)
}

// LevelTop returns the y of level k's input row when levels levels share
// height starting at y.
func LevelTop(k, levels int, y, height float32) float32 {
	return y + float32(k)*height/float32(levels)
}
