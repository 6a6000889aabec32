package depthcube_test

import (
	"testing"

	"github.com/go-theft-auto/depthcube"
)

func TestAddQuadFan(t *testing.T) {
	dl := depthcube.AcquireDrawList()
	defer depthcube.ReleaseDrawList(dl)

	dl.AddQuad(0.25, -0.5, 0.5)

	if dl.Len() != 1 {
		t.Fatalf("expected 1 command, got %d", dl.Len())
	}
	cmd := dl.CmdBuffer[0]
	if cmd.VertexOffset != 0 || cmd.VertexCount != depthcube.QuadVertices {
		t.Errorf("unexpected command %+v", cmd)
	}

	want := [][2]float32{{0.25, -0.5}, {0.75, -0.5}, {0.75, 0}, {0.25, 0}}
	for i, v := range dl.Quad(0) {
		if v.Pos != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, v.Pos, want[i])
		}
	}
}

func TestAddGlyphOneQuadPerLitCell(t *testing.T) {
	dl := depthcube.AcquireDrawList()
	defer depthcube.ReleaseDrawList(dl)

	for d := 0; d < 10; d++ {
		dl.Clear()
		dl.AddGlyph(d, 0, 0, 1)
		if dl.Len() != depthcube.LitCells(d) {
			t.Errorf("digit %d: %d quads, want %d", d, dl.Len(), depthcube.LitCells(d))
		}
		for i := 0; i < dl.Len(); i++ {
			p := dl.Quad(i)[0].Pos
			col, row := int(p[0]), int(-p[1])
			if !depthcube.CellLit(d, row, col) {
				t.Errorf("digit %d: quad at cell (%d,%d) which is dark", d, row, col)
			}
		}
	}
}

func TestDrawListClearKeepsCapacity(t *testing.T) {
	dl := depthcube.AcquireDrawList()
	defer depthcube.ReleaseDrawList(dl)

	dl.AddGlyph(8, 0, 0, 0.1)
	capV := cap(dl.VtxBuffer)
	dl.Clear()

	if dl.Len() != 0 || len(dl.VtxBuffer) != 0 {
		t.Error("expected empty draw list after Clear")
	}
	if cap(dl.VtxBuffer) != capV {
		t.Errorf("Clear dropped capacity: %d -> %d", capV, cap(dl.VtxBuffer))
	}
}

func TestAcquireDrawListIsEmpty(t *testing.T) {
	dl := depthcube.AcquireDrawList()
	dl.AddGlyph(0, 0, 0, 0.1)
	depthcube.ReleaseDrawList(dl)

	dl = depthcube.AcquireDrawList()
	defer depthcube.ReleaseDrawList(dl)
	if dl.Len() != 0 {
		t.Errorf("acquired draw list has %d commands", dl.Len())
	}
}
