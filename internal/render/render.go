package render

import "github.com/renkel/dotlife/internal/life"

// Draw renders the full grid onto the surface, one Braille glyph per
// 2x3 block of sub-cells. If the surface dimensions do not match the
// grid's block dimensions the surface is resized first. Changes are
// only staged; committing them is the caller's.
func Draw(g *life.Grid, s Surface) {
	cols, rows := g.Width()/BlockWidth, g.Height()/BlockHeight
	if c, r := s.Size(); c != cols || r != rows {
		s.Resize(cols, rows)
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			var mask uint8
			for dx := 0; dx < BlockWidth; dx++ {
				for dy := 0; dy < BlockHeight; dy++ {
					if g.Get(col*BlockWidth+dx, row*BlockHeight+dy) {
						mask |= 1 << (dy + dx*BlockHeight)
					}
				}
			}
			s.SetCell(col, row, Glyph(mask))
		}
	}
}

// PaintBlock sets the 2x3 sub-cell block under the terminal cell
// (col, row) alive. It never clears a cell; coordinates outside the
// grid are skipped.
func PaintBlock(g *life.Grid, col, row int) {
	if col < 0 || row < 0 {
		return
	}
	for dx := 0; dx < BlockWidth; dx++ {
		for dy := 0; dy < BlockHeight; dy++ {
			x, y := col*BlockWidth+dx, row*BlockHeight+dy
			if x < g.Width() && y < g.Height() {
				g.Set(x, y, true)
			}
		}
	}
}
