package voxel

// Grid is a dense box of cells addressed as [x][y][z] with Y up, the layout
// the mesher walks. A cell holds 0 when empty, else the color index plus one,
// so color index 0 stays a drawable color.
type Grid struct {
	W, H, D int
	cells   []uint16
}

func NewGrid(w, h, d int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if d < 0 {
		d = 0
	}
	return &Grid{W: w, H: h, D: d, cells: make([]uint16, w*h*d)}
}

func (g *Grid) index(x, y, z int) int { return (x*g.H+y)*g.D + z }

func (g *Grid) inside(x, y, z int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H && z >= 0 && z < g.D
}

// Set stores color at (x,y,z). Out of range writes are dropped.
func (g *Grid) Set(x, y, z int, color uint8) {
	if !g.inside(x, y, z) {
		return
	}
	g.cells[g.index(x, y, z)] = uint16(color) + 1
}

// At returns the color at (x,y,z) and whether the cell is solid.
func (g *Grid) At(x, y, z int) (uint8, bool) {
	c := g.cell(x, y, z)
	if c == 0 {
		return 0, false
	}
	return uint8(c - 1), true
}

func (g *Grid) cell(x, y, z int) uint16 {
	if !g.inside(x, y, z) {
		return 0
	}
	return g.cells[g.index(x, y, z)]
}

// Count returns the number of solid cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// GridFromVoxels builds a Y-up grid from Z-up voxels. VOX (x, y, z) lands at
// grid (x, z, d-1-y), a rotation about X, so face winding survives.
func GridFromVoxels(voxels []Voxel) *Grid {
	w, h, d := Bounds(voxels)
	g := NewGrid(w, d, h)
	for _, v := range voxels {
		g.Set(int(v.X), int(v.Z), h-1-int(v.Y), v.Color)
	}
	return g
}
