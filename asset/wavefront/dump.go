package wavefront

import (
	"bufio"
	"fmt"
	"io"
)

// Number of records printed on each row of the dump.
const dumpRowLen = 3

// Dump writes a human readable listing of every parsed array to w.
func (doc *Document) Dump(w io.Writer) error {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "nmeshes: %d\n", doc.MeshCount())
	fmt.Fprintf(out, "npositions: %d\n", doc.PositionCount())
	fmt.Fprintf(out, "nnormals: %d\n", doc.NormalCount())
	fmt.Fprintf(out, "ntexcoords: %d\n", doc.TexCoordCount())
	fmt.Fprintf(out, "nfaces: %d\n", doc.FaceCount)
	fmt.Fprintf(out, "nfacevertices: %d\n", len(doc.Faces))

	dumpFloats(out, "positions", doc.Positions, 3)
	dumpFloats(out, "normals", doc.Normals, 3)
	dumpFloats(out, "texcoords", doc.TexCoords, 2)

	fmt.Fprintln(out, "mesh offsets:")
	dumpInts(out, doc.MeshOffsets)

	fmt.Fprintln(out, "faces:")
	for index, fv := range doc.Faces {
		if index%dumpRowLen == 0 {
			if index > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%4d ", index)
		}
		fmt.Fprintf(out, "[ %4d %4d %4d ] ", fv.Position, fv.TexCoord, fv.Normal)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "buffer:")
	for index := 0; index < len(doc.Buffer)/VertexStride; index++ {
		record := doc.Vertex(index)
		fmt.Fprintf(out, "%4d ", index)
		fmtFloats(out, record[PositionOffset:TexCoordOffset])
		fmtFloats(out, record[TexCoordOffset:NormalOffset])
		fmtFloats(out, record[NormalOffset:VertexStride])
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "material indices:")
	dumpInts(out, doc.MaterialIndices)

	fmt.Fprintln(out, "materials:")
	for index := range doc.Library.Materials {
		mat := &doc.Library.Materials[index]
		fmt.Fprintf(out, "name:\t\t%s\n", mat.Name)
		fmt.Fprint(out, "ambient:\t")
		fmtFloats(out, mat.Ambient[:])
		fmt.Fprint(out, "\ndiffuse:\t")
		fmtFloats(out, mat.Diffuse[:])
		fmt.Fprint(out, "\nspecular:\t")
		fmtFloats(out, mat.Specular[:])
		fmt.Fprint(out, "\nemissive:\t")
		fmtFloats(out, mat.Emissive[:])
		fmt.Fprintf(out, "\nshininess:\t%10.4f\n", mat.Shininess)
		fmt.Fprintf(out, "refraction:\t%10.4f\n", mat.Refraction)
		fmt.Fprintf(out, "transparency:\t%10.4f\n", mat.Transparency)
		fmt.Fprintf(out, "illum:\t\t%5d\n", mat.Illum)
		for _, texMap := range mat.Maps() {
			fmt.Fprintf(out, "%s map: %s\n", texMap.Slot, texMap.Path)
		}
	}

	return out.Flush()
}

func dumpFloats(out io.Writer, name string, values []float32, width int) {
	fmt.Fprintf(out, "%s:\n", name)
	for index := 0; index < len(values)/width; index++ {
		if index%dumpRowLen == 0 {
			if index > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%4d ", index)
		}
		fmtFloats(out, values[index*width:(index+1)*width])
	}
	fmt.Fprintln(out)
}

func dumpInts(out io.Writer, values []int) {
	for index, v := range values {
		if index > 0 && index%16 == 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%4d ", v)
	}
	fmt.Fprintln(out)
}

func fmtFloats(out io.Writer, values []float32) {
	fmt.Fprint(out, "[ ")
	for _, v := range values {
		fmt.Fprintf(out, "%8.4f ", v)
	}
	fmt.Fprint(out, "] ")
}
