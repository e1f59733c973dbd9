package hud

import (
	"fmt"

	"voxel-sandbox/internal/graphics"
	renderer "voxel-sandbox/internal/graphics/renderer"
	"voxel-sandbox/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	padding   = 20
	textScale = 1.5
)

var textColor = mgl32.Vec3{1, 1, 1}

// HUD draws the frame rate and player coordinates as text.
type HUD struct {
	font          *graphics.FontRenderer
	width, height int
}

// NewHUD creates the overlay for a width x height framebuffer.
func NewHUD(width, height int) *HUD {
	return &HUD{width: width, height: height}
}

// Init bakes the font atlas.
func (h *HUD) Init() error {
	atlas, err := graphics.BakeFontAtlas(graphics.DefaultFace(), 256)
	if err != nil {
		return err
	}
	h.font, err = graphics.NewFontRenderer(atlas, h.width, h.height)
	return err
}

// FPSLine formats the frame rate.
func FPSLine(fps float64) string {
	return fmt.Sprintf("%d FPS", int(fps+0.5))
}

// CoordLines formats a position the way the overlay shows it.
func CoordLines(pos mgl32.Vec3) []string {
	return []string{
		fmt.Sprintf("X: %.2f", pos.X()),
		fmt.Sprintf("Y: %.2f", pos.Y()),
		fmt.Sprintf("Z: %.2f", pos.Z()),
	}
}

// Render draws the frame rate top-left and coordinates top-right.
func (h *HUD) Render(ctx renderer.RenderContext) {
	if !ctx.ShowHUD || h.font == nil {
		return
	}
	defer profiling.Track("renderer.renderHUD")()

	atlas := h.font.Atlas()
	step := float32(atlas.LineHeight) * textScale
	h.font.RenderLines([]string{FPSLine(ctx.FPS)}, padding, padding+step, step, textScale, textColor)

	lines := CoordLines(ctx.Player.Position)
	var widest float32
	for _, l := range lines {
		w, _ := atlas.Measure(l, textScale)
		widest = max(widest, w)
	}
	x := float32(h.width) - widest - padding
	h.font.RenderLines(lines, x, padding+step, step, textScale, textColor)
}

// SetViewport follows framebuffer resizes.
func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	if h.font != nil {
		h.font.SetViewport(width, height)
	}
}

// Dispose releases the font renderer.
func (h *HUD) Dispose() {
	if h.font != nil {
		h.font.Dispose()
		h.font = nil
	}
}
