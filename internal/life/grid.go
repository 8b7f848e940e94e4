package life

import "math/rand"

// Grid holds one generation of cells in a flat row-major buffer,
// index = x + y*width. The second buffer receives the next generation
// during Step and the two are swapped, so the state being read is
// never written within a single step.
type Grid struct {
	width  int
	height int
	cells  []bool
	next   []bool
}

// New returns a grid of the given dimensions with every cell dead.
// Zero dimensions are valid and produce an empty grid. Dimensions must
// be non-negative.
func New(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
		next:   make([]bool, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Cells exposes the backing cell buffer for the current generation,
// row-major. Callers must not resize it.
func (g *Grid) Cells() []bool { return g.cells }

// Get reports whether the cell at (x, y) is alive. Coordinates must be
// within [0,width)x[0,height); out-of-range access panics.
func (g *Grid) Get(x, y int) bool {
	return g.cells[x+y*g.width]
}

// Set assigns the cell at (x, y). Same bounds contract as Get.
func (g *Grid) Set(x, y int, alive bool) {
	g.cells[x+y*g.width] = alive
}

// Randomize overwrites every cell, setting each alive independently
// with the given probability.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}

// Neighbors counts the live cells in the 3x3 Moore neighborhood of
// (x, y), excluding the center. The window is clamped at the edges, so
// corner cells see three neighbors and edge cells five.
func (g *Grid) Neighbors(x, y int) int {
	x0, y0 := x-1, y-1
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	x1, y1 := x+1, y+1
	if x1 > g.width-1 {
		x1 = g.width - 1
	}
	if y1 > g.height-1 {
		y1 = g.height - 1
	}

	n := 0
	for j := y0; j <= y1; j++ {
		for i := x0; i <= x1; i++ {
			if i == x && j == y {
				continue
			}
			if g.cells[i+j*g.width] {
				n++
			}
		}
	}
	return n
}

// Step advances the grid by one generation. The new generation is
// written into the spare buffer from the complete current state, then
// the buffers are swapped.
func (g *Grid) Step() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.next[x+y*g.width] = NextState(g.cells[x+y*g.width], g.Neighbors(x, y))
		}
	}
	g.cells, g.next = g.next, g.cells
}

// NextState applies the B3/S23 rule to a single cell.
func NextState(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy sharing no buffers with the original.
func (g *Grid) Clone() *Grid {
	c := New(g.width, g.height)
	copy(c.cells, g.cells)
	return c
}
