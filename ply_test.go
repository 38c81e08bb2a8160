package sketch3d

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestWritePLY(t *testing.T) {
	g, err := Box(2, 2, 2, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePLY(&buf, g); err != nil {
		t.Fatalf("WritePLY: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"ply\n",
		"format ascii 1.0\n",
		fmt.Sprintf("element vertex %d\n", len(g.Vertices)),
		fmt.Sprintf("element face %d\n", len(g.Faces)),
		"property float nx\n",
		"end_header\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	headerEnd := -1
	for i, l := range lines {
		if l == "end_header" {
			headerEnd = i
			break
		}
	}
	if headerEnd < 0 {
		t.Fatal("no end_header line")
	}
	body := lines[headerEnd+1:]
	if len(body) != len(g.Vertices)+len(g.Faces) {
		t.Fatalf("body lines = %d, want %d vertices + %d faces", len(body), len(g.Vertices), len(g.Faces))
	}

	// transform applied: a unit-cube corner scaled by 2 lands on +-1
	if !strings.HasPrefix(body[0], "-1.0") && !strings.HasPrefix(body[0], "1.0") {
		t.Errorf("first vertex line %q not scaled to the requested size", body[0])
	}
	for _, fl := range body[len(g.Vertices):] {
		if !strings.HasPrefix(fl, "3 ") {
			t.Errorf("face line %q does not start with vertex count 3", fl)
		}
	}
}

func TestWritePLYWithoutNormals(t *testing.T) {
	g, err := Line3D(0, 0, 0, 1, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePLY(&buf, g); err != nil {
		t.Fatalf("WritePLY: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "property float nx") {
		t.Error("normal properties written for a mesh without normals")
	}
	if !strings.Contains(out, "element vertex 2\n") || !strings.Contains(out, "element face 0\n") {
		t.Errorf("unexpected element counts in header:\n%s", out)
	}
}
