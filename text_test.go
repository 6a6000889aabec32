package depthcube_test

import (
	"math"
	"testing"

	"github.com/go-theft-auto/depthcube"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestFormatDepth(t *testing.T) {
	tests := []struct {
		depth float32
		want  string
	}{
		{0.5, "0.500"},
		{0, "0.000"},
		{1, "1.000"},
		{0.9876, "0.988"},
		{0.25, "0.250"},
		{-0.25, "-0.250"},
	}
	for _, tt := range tests {
		if got := depthcube.FormatDepth(tt.depth); got != tt.want {
			t.Errorf("FormatDepth(%v) = %q, want %q", tt.depth, got, tt.want)
		}
	}
}

func TestLayoutDepthTextHalf(t *testing.T) {
	dl := depthcube.AcquireDrawList()
	defer depthcube.ReleaseDrawList(dl)

	text := depthcube.LayoutDepthText(dl, 0.5)
	if text != "0.500" {
		t.Fatalf("text = %q, want %q", text, "0.500")
	}

	// "0" 12, "." 12 degenerate, "5" 11, "0" 12, "0" 12
	if dl.Len() != 59 {
		t.Fatalf("expected 59 quads, got %d", dl.Len())
	}

	// Group commands by character position, preserving order.
	type run struct {
		char  byte
		digit int
		first int
		count int
	}
	var runs []run
	for i, cmd := range dl.CmdBuffer {
		if n := len(runs); n > 0 && dl.CmdBuffer[runs[n-1].first].Index == cmd.Index {
			runs[n-1].count++
			continue
		}
		runs = append(runs, run{char: cmd.Char, digit: cmd.Digit, first: i, count: 1})
	}

	want := []struct {
		char  byte
		digit int
		count int
		size  float32
	}{
		{'0', 0, 12, depthcube.TextCellSize},
		{'.', 0, 12, 0},
		{'5', 5, 11, depthcube.TextCellSize},
		{'0', 0, 12, depthcube.TextCellSize},
		{'0', 0, 12, depthcube.TextCellSize},
	}
	if len(runs) != len(want) {
		t.Fatalf("expected %d characters, got %d", len(want), len(runs))
	}
	for i, w := range want {
		r := runs[i]
		if idx := dl.CmdBuffer[r.first].Index; idx != i {
			t.Errorf("char %d: index %d", i, idx)
		}
		if r.char != w.char || r.digit != w.digit || r.count != w.count {
			t.Errorf("char %d: got (%q, glyph %d, %d quads), want (%q, glyph %d, %d quads)",
				i, r.char, r.digit, r.count, w.char, w.digit, w.count)
		}
		if size := dl.CmdBuffer[r.first].Size; size != w.size {
			t.Errorf("char %d: cell size %v, want %v", i, size, w.size)
		}

		// The leftmost column of every glyph starts at the character origin.
		wantX := float32(-0.95 + 0.19*float64(i))
		minX := float32(math.MaxFloat32)
		for q := r.first; q < r.first+r.count; q++ {
			if x := dl.Quad(q)[0].Pos[0]; x < minX {
				minX = x
			}
		}
		if !approx(minX, wantX) {
			t.Errorf("char %d: leftmost x = %v, want %v", i, minX, wantX)
		}
	}
}

func TestLayoutDecimalPointIsDegenerate(t *testing.T) {
	dl := depthcube.AcquireDrawList()
	defer depthcube.ReleaseDrawList(dl)

	depthcube.LayoutText(dl, ".")
	if dl.Len() != depthcube.LitCells(0) {
		t.Fatalf("expected %d quads for '.', got %d", depthcube.LitCells(0), dl.Len())
	}
	for i := 0; i < dl.Len(); i++ {
		q := dl.Quad(i)
		for _, v := range q[1:] {
			if v != q[0] {
				t.Fatalf("quad %d has area: %v", i, q)
			}
		}
		if q[0].Pos != [2]float32{depthcube.TextOriginX, depthcube.TextOriginY} {
			t.Errorf("quad %d at %v, want the character origin", i, q[0].Pos)
		}
	}
}

func TestLayoutSkipsOtherCharacters(t *testing.T) {
	dl := depthcube.AcquireDrawList()
	defer depthcube.ReleaseDrawList(dl)

	depthcube.LayoutText(dl, "-1")
	if dl.Len() != depthcube.LitCells(1) {
		t.Fatalf("expected only the quads of '1', got %d", dl.Len())
	}

	// '1' is the second character, so it still advanced past '-'.
	// Its leftmost lit cell is column 0 of row 1.
	minX := float32(math.MaxFloat32)
	for i := 0; i < dl.Len(); i++ {
		if x := dl.Quad(i)[0].Pos[0]; x < minX {
			minX = x
		}
	}
	if !approx(minX, depthcube.CharX(1)) {
		t.Errorf("leftmost x = %v, want %v", minX, depthcube.CharX(1))
	}
}

func TestLayoutGlyphRows(t *testing.T) {
	dl := depthcube.AcquireDrawList()
	defer depthcube.ReleaseDrawList(dl)

	depthcube.LayoutText(dl, "7")

	// "111001001001001": row 0 is full, rows 1-4 light only the right column.
	wantY := []float32{0.9, 0.9, 0.9, 0.86, 0.82, 0.78, 0.74}
	if dl.Len() != len(wantY) {
		t.Fatalf("expected %d quads, got %d", len(wantY), dl.Len())
	}
	for i, y := range wantY {
		if got := dl.Quad(i)[0].Pos[1]; !approx(got, y) {
			t.Errorf("quad %d: y = %v, want %v", i, got, y)
		}
	}
	if x := dl.Quad(3)[0].Pos[0]; !approx(x, depthcube.TextOriginX+2*depthcube.TextCellSize) {
		t.Errorf("quad 3: x = %v, want right column", x)
	}
}
