package depthcube

// Glyph dimensions in cells.
const (
	GlyphCols  = 3
	GlyphRows  = 5
	GlyphCells = GlyphCols * GlyphRows
)

// DigitGlyphs is the 3×5 bitmap for each decimal digit.
// Each string holds 15 cells, rows top to bottom, columns left to right;
// '1' is a lit cell.
var DigitGlyphs = [10]string{
	"111101101101111", // 0
	"010110010010111", // 1
	"111001111100111", // 2
	"111001111001111", // 3
	"101101111001001", // 4
	"111100111001111", // 5
	"111100111101111", // 6
	"111001001001001", // 7
	"111101111101111", // 8
	"111101111001111", // 9
}

// Glyph returns the bitmap for digit d.
// ok is false if d is not in 0..9.
func Glyph(d int) (bitmap string, ok bool) {
	if d < 0 || d >= len(DigitGlyphs) {
		return "", false
	}
	return DigitGlyphs[d], true
}

// CellLit reports whether the cell at row, col of digit d is lit.
// Out of range arguments report false.
func CellLit(d, row, col int) bool {
	g, ok := Glyph(d)
	if !ok || row < 0 || row >= GlyphRows || col < 0 || col >= GlyphCols {
		return false
	}
	return g[row*GlyphCols+col] == '1'
}

// LitCells returns the number of lit cells in digit d.
func LitCells(d int) int {
	g, ok := Glyph(d)
	if !ok {
		return 0
	}
	n := 0
	for i := 0; i < len(g); i++ {
		if g[i] == '1' {
			n++
		}
	}
	return n
}
