package hyperview

import (
	"errors"
	"reflect"
	"testing"
)

func TestDeduplicateTemplates(t *testing.T) {
	testCases := []struct {
		name      string
		dedup     func() (int, []int, []int, error)
		quadCount int
		lineCount int
	}{
		{
			name: "cube",
			dedup: func() (int, []int, []int, error) {
				v, q, l, err := Deduplicate(cubeVertices, cubeQuads, cubeLines)
				return len(v), q, l, err
			},
			quadCount: 24,
			lineCount: 24,
		},
		{
			name: "hypercube",
			dedup: func() (int, []int, []int, error) {
				v, q, l, err := Deduplicate(hypercubeVertices, hypercubeQuads, hypercubeLines)
				return len(v), q, l, err
			},
			quadCount: 48,
			lineCount: 64,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			nVertices, quads, lines, err := tc.dedup()
			if err != nil {
				t.Fatalf("Deduplicate() error = %v", err)
			}
			if nVertices != tc.quadCount {
				t.Errorf("vertex count = %d, want %d", nVertices, tc.quadCount)
			}
			if len(quads) != tc.quadCount {
				t.Errorf("quad index count = %d, want %d", len(quads), tc.quadCount)
			}
			for k, q := range quads {
				if q != k {
					t.Errorf("quads[%d] = %d, want %d", k, q, k)
				}
			}
			if len(lines) != tc.lineCount {
				t.Errorf("line index count = %d, want %d", len(lines), tc.lineCount)
			}
			for i, l := range lines {
				if l < 0 || l >= nVertices {
					t.Errorf("lines[%d] = %d, out of range [0,%d)", i, l, nVertices)
				}
			}
		})
	}
}

func TestDeduplicateCopiesCornerPositions(t *testing.T) {
	vertices, _, _, err := Deduplicate(cubeVertices, cubeQuads, cubeLines)
	if err != nil {
		t.Fatalf("Deduplicate() error = %v", err)
	}
	for k, orig := range cubeQuads {
		if vertices[k] != cubeVertices[orig] {
			t.Errorf("vertices[%d] = %v, want %v", k, vertices[k], cubeVertices[orig])
		}
	}
}

func TestDeduplicateLastWriterWins(t *testing.T) {
	_, _, lines, err := Deduplicate(cubeVertices, cubeQuads, cubeLines)
	if err != nil {
		t.Fatalf("Deduplicate() error = %v", err)
	}

	// vertex 0 is last written by the left face (slot 22), vertex 1 by the
	// right face (slot 15), vertex 2 by the back face (slot 19)
	want := []int{22, 15, 15, 19}
	if !reflect.DeepEqual(lines[:4], want) {
		t.Errorf("lines[:4] = %v, want %v", lines[:4], want)
	}
}

func TestDeduplicateGenericVertexType(t *testing.T) {
	vertices, quads, lines, err := Deduplicate(
		[]string{"a", "b", "c", "d"},
		[]int{0, 1, 2, 3, 3, 2, 1, 0},
		[]int{0, 3},
	)
	if err != nil {
		t.Fatalf("Deduplicate() error = %v", err)
	}
	if want := []string{"a", "b", "c", "d", "d", "c", "b", "a"}; !reflect.DeepEqual(vertices, want) {
		t.Errorf("vertices = %v, want %v", vertices, want)
	}
	if want := []int{0, 1, 2, 3, 4, 5, 6, 7}; !reflect.DeepEqual(quads, want) {
		t.Errorf("quads = %v, want %v", quads, want)
	}
	if want := []int{7, 4}; !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %v, want %v", lines, want)
	}
}

func TestDeduplicateDoesNotModifyInput(t *testing.T) {
	vertices := []Position3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	quads := []int{3, 2, 1, 0}
	lines := []int{0, 1}

	out, _, _, err := Deduplicate(vertices, quads, lines)
	if err != nil {
		t.Fatalf("Deduplicate() error = %v", err)
	}
	out[0] = Position3{9, 9, 9}

	if vertices[3] != (Position3{0, 1, 0}) {
		t.Errorf("input vertex changed to %v", vertices[3])
	}
	if !reflect.DeepEqual(quads, []int{3, 2, 1, 0}) {
		t.Errorf("input quads changed to %v", quads)
	}
}

func TestDeduplicateInvalidTopology(t *testing.T) {
	square := []Position3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {5, 5, 5}}

	testCases := []struct {
		name  string
		quads []int
		lines []int
	}{
		{name: "quad count not a multiple of 4", quads: []int{0, 1, 2, 3, 0}, lines: nil},
		{name: "odd line count", quads: []int{0, 1, 2, 3}, lines: []int{0, 1, 2}},
		{name: "quad index out of range", quads: []int{0, 1, 2, 9}, lines: nil},
		{name: "negative quad index", quads: []int{0, -1, 2, 3}, lines: nil},
		{name: "line index out of range", quads: []int{0, 1, 2, 3}, lines: []int{0, 7}},
		{name: "line endpoint not in any quad", quads: []int{0, 1, 2, 3}, lines: []int{0, 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, q, l, err := Deduplicate(square, tc.quads, tc.lines)
			if !errors.Is(err, ErrInvalidTopology) {
				t.Fatalf("Deduplicate() error = %v, want ErrInvalidTopology", err)
			}
			if v != nil || q != nil || l != nil {
				t.Errorf("Deduplicate() returned buffers alongside error")
			}
		})
	}
}
