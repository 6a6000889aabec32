package depthcube

import "strconv"

// Readout placement in normalized device coordinates.
const (
	TextOriginX  float32 = -0.95
	TextOriginY  float32 = 0.9
	TextAdvance  float32 = 0.19
	TextCellSize float32 = 0.04

	// DepthPrecision is the number of fractional digits in the readout.
	DepthPrecision = 3
)

// FormatDepth formats a depth sample with DepthPrecision fractional digits.
func FormatDepth(depth float32) string {
	return strconv.FormatFloat(float64(depth), 'f', DepthPrecision, 64)
}

// CharX returns the left edge of the i-th readout character.
func CharX(i int) float32 {
	return TextOriginX + float32(i)*TextAdvance
}

// LayoutDepthText formats depth and appends its glyph quads to dl.
// It returns the formatted text.
//
// Digits draw their glyph at TextCellSize. A '.' draws glyph 0 with a cell
// size of zero, so it contributes degenerate quads and no visible mark.
// Any other character draws nothing. Every character advances by
// TextAdvance.
func LayoutDepthText(dl *DrawList, depth float32) string {
	s := FormatDepth(depth)
	LayoutText(dl, s)
	return s
}

// LayoutText appends the glyph quads for s to dl.
func LayoutText(dl *DrawList, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		dl.index, dl.char = i, c
		x := CharX(i)
		switch {
		case c >= '0' && c <= '9':
			dl.AddGlyph(int(c-'0'), x, TextOriginY, TextCellSize)
		case c == '.':
			dl.AddGlyph(0, x, TextOriginY, 0)
		}
	}
	dl.index, dl.char = 0, 0
}
