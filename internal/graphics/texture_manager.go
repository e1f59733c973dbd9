package graphics

import (
	"image/color"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/rs/zerolog"
)

var (
	checkerLight = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	checkerDark  = color.RGBA{R: 190, G: 190, B: 190, A: 255}
)

// Textures caches GL textures by path and substitutes a generated checker
// texture for files that cannot be loaded.
type Textures struct {
	mu       sync.Mutex
	cache    map[string]uint32
	fallback uint32
	log      zerolog.Logger
}

// NewTextures creates an empty cache.
func NewTextures(logger zerolog.Logger) *Textures {
	return &Textures{
		cache: make(map[string]uint32),
		log:   logger.With().Str("component", "textures").Logger(),
	}
}

// Get returns the texture for path, loading it on first use. A failed load
// is logged once and served the fallback from then on.
func (t *Textures) Get(path string) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tex, ok := t.cache[path]; ok {
		return tex
	}
	tex, w, h, err := LoadTexture(path)
	if err != nil {
		t.log.Warn().Err(err).Str("path", path).Msg("using generated texture")
		tex = t.fallbackLocked()
	} else {
		t.log.Debug().Str("path", path).Int("width", w).Int("height", h).Msg("texture loaded")
	}
	t.cache[path] = tex
	return tex
}

func (t *Textures) fallbackLocked() uint32 {
	if t.fallback == 0 {
		t.fallback = UploadTexture(Checkerboard(16, 2, checkerLight, checkerDark))
	}
	return t.fallback
}

// Dispose deletes every cached texture.
func (t *Textures) Dispose() {
	t.mu.Lock()
	defer t.mu.Unlock()
	seen := make(map[uint32]bool, len(t.cache)+1)
	for _, tex := range t.cache {
		seen[tex] = true
	}
	seen[t.fallback] = true
	for tex := range seen {
		if tex != 0 {
			gl.DeleteTextures(1, &tex)
		}
	}
	clear(t.cache)
	t.fallback = 0
}
