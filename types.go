package depthcube

// Vertex is one corner of a text quad in normalized device coordinates.
// Memory layout matches the text program's single vec2 attribute.
type Vertex struct {
	Pos [2]float32
}

// DrawCmd is one text quad: four vertices drawn as a triangle fan.
type DrawCmd struct {
	VertexOffset uint32 // Offset into the vertex buffer
	VertexCount  uint32 // Always QuadVertices
	Index        int    // Position of the character in the readout
	Char         byte   // Character of the readout the quad belongs to
	Digit        int    // Glyph drawn for Char
	Size         float32
}

// QuadVertices is the vertex count of one text quad.
const QuadVertices = 4

// MeshVertex is one cube corner: position followed by colour.
type MeshVertex struct {
	Pos   [3]float32
	Color [3]float32
}

// Color is a linear RGBA colour with components in [0, 1].
type Color [4]float32
