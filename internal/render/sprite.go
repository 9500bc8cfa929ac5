// Package render draws circuit boards: box-drawing glyphs into a core.Screen
// for the terminal, and sprite tiles into a PNG for export.
package render

import "github.com/vovakirdan/tui-circuit/internal/circuit"

// UVRect is a region of the sprite sheet in normalized coordinates.
// U grows to the right and V grows downward in image-row order, so V=0 is
// the top row of the sheet. This is flipped from bottom-up texture UVs.
type UVRect struct {
	U, V float64
	W, H float64
}

// TileSize is the size of one sprite in UV units; the sheet is 4x4 tiles.
const TileSize = 0.25

// linkMask packs the four connected flags as up=1, right=2, down=4, left=8.
func linkMask(c *circuit.Cell) int {
	m := 0
	for i, dir := range circuit.Directions {
		if c.Connected(dir) {
			m |= 1 << i
		}
	}
	return m
}

// tileOf places a link mask on the sheet. The column carries up (weight 2)
// and left (weight 1); the row carries down (weight 2) and right (weight 1).
func tileOf(mask int) (col, row int) {
	up := mask & 1
	right := mask >> 1 & 1
	down := mask >> 2 & 1
	left := mask >> 3 & 1
	return 2*up + left, 2*down + right
}

// SpriteRegion selects the sheet tile that shows the cell's links.
func SpriteRegion(c *circuit.Cell) UVRect {
	col, row := tileOf(linkMask(c))
	return UVRect{
		U: float64(col) * TileSize,
		V: float64(row) * TileSize,
		W: TileSize,
		H: TileSize,
	}
}

// SpriteIndex returns the tile number 0-15 of SpriteRegion, row-major.
func SpriteIndex(c *circuit.Cell) int {
	col, row := tileOf(linkMask(c))
	return row*4 + col
}

// Glyph tables are indexed by link mask.
var (
	lightGlyphs = [16]rune{
		'·', '╵', '╶', '└', '╷', '│', '┌', '├',
		'╴', '┘', '─', '┴', '┐', '┤', '┬', '┼',
	}
	heavyGlyphs = [16]rune{
		'·', '║', '═', '╚', '║', '║', '╔', '╠',
		'═', '╝', '═', '╩', '╗', '╣', '╦', '╬',
	}
)

// Glyph returns the centre character for a cell: light box lines for wire,
// double lines for data.
func Glyph(c *circuit.Cell) rune {
	mask := linkMask(c)
	if c.Status() == circuit.StatusData {
		return heavyGlyphs[mask]
	}
	return lightGlyphs[mask]
}
