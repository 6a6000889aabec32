package depthcube

import "sync"

// drawListPool reuses DrawList buffers across frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 256),
			CmdBuffer: make([]DrawCmd, 0, 64),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates the text quads of one frame.
// Quads are not batched: each DrawCmd is uploaded and drawn on its own.
type DrawList struct {
	CmdBuffer []DrawCmd // One command per quad, in emit order
	VtxBuffer []Vertex  // QuadVertices per command

	index int
	char  byte
	digit int
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.index = 0
	dl.char = 0
	dl.digit = 0
}

// AddQuad appends an axis-aligned square whose bottom-left corner is (x, y).
// Vertices wind counter-clockwise for a triangle fan. A zero size is kept
// as a degenerate quad.
func (dl *DrawList) AddQuad(x, y, size float32) {
	off := uint32(len(dl.VtxBuffer))
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x, y}},
		Vertex{Pos: [2]float32{x + size, y}},
		Vertex{Pos: [2]float32{x + size, y + size}},
		Vertex{Pos: [2]float32{x, y + size}},
	)
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		VertexOffset: off,
		VertexCount:  QuadVertices,
		Index:        dl.index,
		Char:         dl.char,
		Digit:        dl.digit,
		Size:         size,
	})
}

// AddGlyph appends one quad per lit cell of digit d. The glyph's top-left
// cell sits at (x, y) and rows grow downwards by size.
func (dl *DrawList) AddGlyph(d int, x, y, size float32) {
	dl.digit = d
	for row := 0; row < GlyphRows; row++ {
		for col := 0; col < GlyphCols; col++ {
			if !CellLit(d, row, col) {
				continue
			}
			dl.AddQuad(x+float32(col)*size, y-float32(row)*size, size)
		}
	}
}

// Quad returns the vertices of command i.
func (dl *DrawList) Quad(i int) []Vertex {
	cmd := dl.CmdBuffer[i]
	return dl.VtxBuffer[cmd.VertexOffset : cmd.VertexOffset+cmd.VertexCount]
}

// Len returns the number of quads.
func (dl *DrawList) Len() int {
	return len(dl.CmdBuffer)
}
