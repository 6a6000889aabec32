package opengl

import (
	"bytes"
	"testing"
)

func TestFlipRows(t *testing.T) {
	tests := []struct {
		name   string
		pix    []byte
		stride int
		height int
		want   []byte
	}{
		{"even", []byte{1, 1, 2, 2, 3, 3, 4, 4}, 2, 4, []byte{4, 4, 3, 3, 2, 2, 1, 1}},
		{"odd keeps middle", []byte{1, 2, 3}, 1, 3, []byte{3, 2, 1}},
		{"single row", []byte{7, 8, 9}, 3, 1, []byte{7, 8, 9}},
		{"empty", nil, 4, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix := append([]byte(nil), tt.pix...)
			FlipRows(pix, tt.stride, tt.height)
			if !bytes.Equal(pix, tt.want) {
				t.Errorf("got %v, want %v", pix, tt.want)
			}
		})
	}
}

func TestStageName(t *testing.T) {
	if got := stageName(0x8B31); got != "vertex shader" {
		t.Errorf("stageName(VERTEX_SHADER) = %q", got)
	}
	if got := stageName(0x8B30); got != "fragment shader" {
		t.Errorf("stageName(FRAGMENT_SHADER) = %q", got)
	}
	if got := stageName(0x1234); got != "shader 0x1234" {
		t.Errorf("stageName(0x1234) = %q", got)
	}
}
