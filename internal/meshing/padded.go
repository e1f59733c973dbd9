package meshing

import "fmt"

// Padded is the occupancy buffer of one chunk plus a one-cell border taken
// from its neighbors. Cells 1..n are the chunk's own, 0 and n+1 are border.
type Padded struct {
	n     int
	side  int
	cells []uint8
}

// NewPadded allocates an empty (n+2)^3 buffer for a chunk of edge length n.
func NewPadded(n int) *Padded {
	if n <= 0 {
		panic(fmt.Sprintf("meshing: invalid chunk size %d", n))
	}
	side := n + 2
	return &Padded{
		n:     n,
		side:  side,
		cells: make([]uint8, side*side*side),
	}
}

// Size returns the chunk edge length n (not including the border).
func (p *Padded) Size() int {
	return p.n
}

func (p *Padded) index(x, y, z int) (int, bool) {
	if x < 0 || x >= p.side || y < 0 || y >= p.side || z < 0 || z >= p.side {
		return 0, false
	}
	return (x*p.side+y)*p.side + z, true
}

// Solid reports whether the padded cell is occupied. Anything outside the
// buffer is empty.
func (p *Padded) Solid(x, y, z int) bool {
	i, ok := p.index(x, y, z)
	if !ok {
		return false
	}
	return p.cells[i] != 0
}

// Set stores the occupancy of a padded cell. Out-of-range writes are ignored.
func (p *Padded) Set(x, y, z int, solid bool) {
	i, ok := p.index(x, y, z)
	if !ok {
		return
	}
	if solid {
		p.cells[i] = 1
	} else {
		p.cells[i] = 0
	}
}

// Reset clears every cell so the buffer can be reused for another chunk.
func (p *Padded) Reset() {
	clear(p.cells)
}
