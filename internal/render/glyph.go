package render

// Each terminal character cell displays one block of sub-cells.
const (
	BlockWidth  = 2
	BlockHeight = 3
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800. Only the top three dot rows are used, so dots
// 7 and 8 stay clear in every glyph.
var dotBits = [3][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
}

var glyphs [256]rune

func init() {
	for mask := range glyphs {
		r := rune(0x2800)
		for dx := 0; dx < BlockWidth; dx++ {
			for dy := 0; dy < BlockHeight; dy++ {
				if mask&(1<<(dy+dx*BlockHeight)) != 0 {
					r |= dotBits[dy][dx]
				}
			}
		}
		glyphs[mask] = r
	}
}

// Glyph maps a block mask to its Braille character. Bit dy+dx*3 of the
// mask is the sub-cell at column dx, row dy of the block (left column
// top to bottom, then right column); bits 6 and 7 are ignored. The
// lookup is total: every mask value has a precomputed glyph.
func Glyph(mask uint8) rune {
	return glyphs[mask]
}
