package graphics

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	Advance  int
}

// FontAtlas holds the baked glyph image and per-glyph metrics.
type FontAtlas struct {
	Image      *image.Alpha
	LineHeight int
	Characters map[rune]FontCharacter
}

// DefaultFace is the built-in bitmap face used when no font file is configured.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// BakeFontAtlas rasterizes the printable ASCII range of face into a
// single-channel atlas of the given width.
func BakeFontAtlas(face font.Face, atlasW int) (*FontAtlas, error) {
	const padding = 1
	type glyph struct {
		r       rune
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}
	var glyphs []glyph
	maxH := 0
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, glyph{r, dr, mask, maskp, advance})
		maxH = max(maxH, dr.Dy())
	}
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("font face has no printable glyphs")
	}

	// First pass: pack rows to find the atlas height.
	offsetX, atlasH := 0, maxH+padding
	for _, g := range glyphs {
		w := g.dr.Dx()
		if offsetX+w+padding > atlasW {
			atlasH += maxH + padding
			offsetX = 0
		}
		offsetX += w + padding
	}

	atlas := &FontAtlas{
		Image:      image.NewAlpha(image.Rect(0, 0, atlasW, atlasH)),
		LineHeight: face.Metrics().Height.Round(),
		Characters: make(map[rune]FontCharacter, len(glyphs)),
	}

	offsetX, offsetY := 0, 0
	for _, g := range glyphs {
		gw, gh := g.dr.Dx(), g.dr.Dy()
		if offsetX+gw+padding > atlasW {
			offsetX = 0
			offsetY += maxH + padding
		}
		if gw > 0 && gh > 0 && g.mask != nil {
			dst := image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh)
			draw.Draw(atlas.Image, dst, g.mask, g.maskp, draw.Src)
		}
		atlas.Characters[g.r] = FontCharacter{
			AtlasX:   float32(offsetX),
			AtlasY:   float32(offsetY),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  g.advance.Round(),
		}
		offsetX += gw + padding
	}
	return atlas, nil
}

// Measure returns the width and tallest glyph height of text at scale.
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			fc = a.Characters[' ']
		}
		width += float32(fc.Advance) * scale
		maxH = max(maxH, fc.Height*scale)
	}
	return width, maxH
}

// Layout builds two triangles per visible glyph, four floats per vertex
// (screen x, y, atlas u, v). y is the baseline in a top-left origin.
func (a *FontAtlas) Layout(text string, x, y, scale float32) []float32 {
	aw := float32(a.Image.Rect.Dx())
	ah := float32(a.Image.Rect.Dy())
	vertices := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			x += float32(a.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 && fc.Height > 0 {
			xPos := x + fc.BearingX*scale
			yPos := y - fc.BearingY*scale
			w := fc.Width * scale
			h := fc.Height * scale
			u0, v0 := fc.AtlasX/aw, fc.AtlasY/ah
			u1, v1 := (fc.AtlasX+fc.Width)/aw, (fc.AtlasY+fc.Height)/ah
			vertices = append(vertices,
				xPos, yPos+h, u0, v1,
				xPos, yPos, u0, v0,
				xPos+w, yPos, u1, v0,
				xPos, yPos+h, u0, v1,
				xPos+w, yPos, u1, v0,
				xPos+w, yPos+h, u1, v1,
			)
		}
		x += float32(fc.Advance) * scale
	}
	return vertices
}

// FontRenderer draws text from a baked atlas in pixel coordinates.
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	texture    uint32
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer uploads the atlas and compiles the text shader.
func NewFontRenderer(atlas *FontAtlas, width, height int) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := LoadShader("text.vert", "text.frag")
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}
	fr.SetViewport(width, height)
	fr.initGL()
	return fr, nil
}

// Atlas returns the glyph atlas.
func (fr *FontRenderer) Atlas() *FontAtlas {
	return fr.atlas
}

// SetViewport maps pixel coordinates onto a width x height framebuffer.
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

func (fr *FontRenderer) initGL() {
	img := fr.atlas.Image
	gl.GenTextures(1, &fr.texture)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// RenderLines draws lines starting at (x, yStart), one lineStep apart.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	var vertices []float32
	y := yStart
	for _, line := range lines {
		vertices = append(vertices, fr.atlas.Layout(line, x, y, scale)...)
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	fr.shader.SetMatrix4("projection", &fr.projection[0])
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Dispose releases GL objects.
func (fr *FontRenderer) Dispose() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.texture != 0 {
		gl.DeleteTextures(1, &fr.texture)
	}
	fr.shader.Delete()
}
