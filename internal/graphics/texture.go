package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxTextureSize bounds the edge of uploaded images; larger ones are scaled down.
const MaxTextureSize = 1024

// DecodeRGBA decodes an image and converts it to RGBA, scaling it to fit
// within maxSize on its longer edge.
func DecodeRGBA(r io.Reader, maxSize int) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("image has no pixels")
	}
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			w, h = maxSize, max(1, h*maxSize/w)
		} else {
			w, h = max(1, w*maxSize/h), maxSize
		}
		rgba := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, b, xdraw.Src, nil)
		return rgba, nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Copy(rgba, image.Point{}, img, b, xdraw.Src, nil)
	return rgba, nil
}

// Checkerboard generates a size x size two-tone grid of cells x cells squares.
// It stands in when a texture file is missing.
func Checkerboard(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(1, size/max(1, cells))
	for y := range size {
		for x := range size {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// LoadTexture loads a 2D texture from a file
func LoadTexture(path string) (uint32, int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	rgba, err := DecodeRGBA(file, MaxTextureSize)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("texture %s: %w", path, err)
	}
	size := rgba.Rect.Size()
	return UploadTexture(rgba), size.X, size.Y, nil
}

// UploadTexture creates a GL texture from img with nearest filtering.
func UploadTexture(img *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(img.Rect.Size().X),
		int32(img.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}
