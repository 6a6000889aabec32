package depthcube

import "unsafe"

// CubeVertices are the eight corners of a unit cube centred on the origin,
// each with its own colour.
var CubeVertices = [8]MeshVertex{
	{Pos: [3]float32{-0.5, -0.5, -0.5}, Color: [3]float32{1, 0, 0}},
	{Pos: [3]float32{0.5, -0.5, -0.5}, Color: [3]float32{0, 1, 0}},
	{Pos: [3]float32{0.5, 0.5, -0.5}, Color: [3]float32{0, 0, 1}},
	{Pos: [3]float32{-0.5, 0.5, -0.5}, Color: [3]float32{1, 1, 0}},
	{Pos: [3]float32{-0.5, -0.5, 0.5}, Color: [3]float32{0, 1, 1}},
	{Pos: [3]float32{0.5, -0.5, 0.5}, Color: [3]float32{1, 0, 1}},
	{Pos: [3]float32{0.5, 0.5, 0.5}, Color: [3]float32{1, 1, 1}},
	{Pos: [3]float32{-0.5, 0.5, 0.5}, Color: [3]float32{0, 0, 0}},
}

// CubeIndices lists the 12 triangles of the cube, two per face.
var CubeIndices = [36]uint32{
	0, 1, 2, 2, 3, 0,
	4, 5, 6, 6, 7, 4,
	0, 1, 5, 5, 4, 0,
	2, 3, 7, 7, 6, 2,
	0, 3, 7, 7, 4, 0,
	1, 2, 6, 6, 5, 1,
}

// Vertex layout of CubeVertices.
const (
	MeshStride      = int32(unsafe.Sizeof(MeshVertex{}))
	MeshColorOffset = unsafe.Offsetof(MeshVertex{}.Color)
)
