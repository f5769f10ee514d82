package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer paints the sky and distant hills once into a render
// texture and blits it every frame.
type BackgroundRenderer struct {
	target      rl.RenderTexture2D
	width       int32
	height      int32
	top, bottom rl.Color
	hills       rl.Color
	initialized bool
}

// NewBackgroundRenderer creates a background of the given playfield size.
func NewBackgroundRenderer(width, height int32) *BackgroundRenderer {
	return &BackgroundRenderer{
		width:  width,
		height: height,
		top:    rl.Color{R: 78, G: 192, B: 202, A: 255},
		bottom: rl.Color{R: 200, G: 236, B: 240, A: 255},
		hills:  rl.Color{R: 94, G: 190, B: 110, A: 255},
	}
}

// Init renders the background texture. Must be called after the raylib
// window is created.
func (b *BackgroundRenderer) Init() {
	if b.initialized {
		return
	}

	b.target = rl.LoadRenderTexture(b.width, b.height)
	rl.BeginTextureMode(b.target)
	rl.DrawRectangleGradientV(0, 0, b.width, b.height, b.top, b.bottom)

	// Rolling hills along the bottom edge.
	r := float32(b.width) / 6
	for i := int32(0); i <= 6; i++ {
		cx := int32(float32(i) * r)
		cy := b.height + int32(r*0.4)
		rl.DrawCircle(cx, cy, r*(0.9+0.15*float32(i%2)), b.hills)
	}
	rl.EndTextureMode()

	b.initialized = true
}

// Draw blits the background at the playfield origin.
func (b *BackgroundRenderer) Draw() {
	if !b.initialized {
		b.Init()
	}
	// Render textures are stored upside down.
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(b.width), Height: -float32(b.height)}
	rl.DrawTextureRec(b.target.Texture, src, rl.Vector2{}, rl.White)
}

// Unload frees resources.
func (b *BackgroundRenderer) Unload() {
	if b.initialized {
		rl.UnloadRenderTexture(b.target)
		b.initialized = false
	}
}
