package sketch3d

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WritePLY serializes the mesh as ascii PLY 1.0. The attached transform is
// applied first: PLY has no transform slot, so the file carries the
// requested physical dimensions rather than the canonical unit shape.
// Normals are written only when the mesh has them.
func WritePLY(w io.Writer, geom *Geometry) error {
	writer := bufio.NewWriter(w)

	hasNormals := len(geom.Normals) == len(geom.Vertices) && len(geom.Normals) > 0

	fmt.Fprintln(writer, "ply")
	fmt.Fprintln(writer, "format ascii 1.0")
	fmt.Fprintln(writer, "comment Generated by sketch3d")
	fmt.Fprintf(writer, "element vertex %d\n", len(geom.Vertices))
	fmt.Fprintln(writer, "property float x")
	fmt.Fprintln(writer, "property float y")
	fmt.Fprintln(writer, "property float z")
	if hasNormals {
		fmt.Fprintln(writer, "property float nx")
		fmt.Fprintln(writer, "property float ny")
		fmt.Fprintln(writer, "property float nz")
	}
	fmt.Fprintf(writer, "element face %d\n", len(geom.Faces))
	fmt.Fprintln(writer, "property list uchar int vertex_indices")
	fmt.Fprintln(writer, "end_header")

	for i, v := range geom.TransformedVertices() {
		if hasNormals {
			n := geom.Normals[i]
			fmt.Fprintf(writer, "%f %f %f %f %f %f\n", v.X(), v.Y(), v.Z(), n.X(), n.Y(), n.Z())
		} else {
			fmt.Fprintf(writer, "%f %f %f\n", v.X(), v.Y(), v.Z())
		}
	}

	for _, f := range geom.Faces {
		fmt.Fprintf(writer, "3 %d %d %d\n", f[0], f[1], f[2])
	}

	return writer.Flush()
}

// SavePLY writes the mesh to a new file at the given path.
func SavePLY(fileName string, geom *Geometry) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := WritePLY(file, geom); err != nil {
		return fmt.Errorf("could not write PLY file %s: %w", fileName, err)
	}
	return nil
}
