package wavefront

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Reserve exactly-sized storage for every output array. All containers are
// returned empty; the parsers append into them.
func allocate(counts Counts) *Document {
	return &Document{
		Positions:       make([]float32, 0, 3*counts.Vertices),
		Normals:         make([]float32, 0, 3*counts.Normals),
		TexCoords:       make([]float32, 0, 2*counts.TexCoords),
		Faces:           make([]FaceVertex, 0, counts.FaceVertices),
		Buffer:          make([]float32, 0, VertexStride*counts.FaceVertices),
		MeshOffsets:     make([]int, 0, counts.Meshes+1),
		MeshNames:       make([]string, 0, counts.Meshes),
		MaterialIndices: make([]int, 0, counts.Meshes),
		Library: MaterialLibrary{
			Sources:   make([]string, 0),
			Materials: make([]Material, 0, counts.Materials),
			Origins:   make([]int, 0, counts.Materials),
		},
	}
}

// Verify that the parsed arrays match the sizes predicted by the counting
// pass.
func (doc *Document) checkCounts(counts Counts) error {
	mismatches := make([]string, 0)
	check := func(name string, exp, got int) {
		if exp != got {
			mismatches = append(mismatches, fmt.Sprintf("%s: expected %d; got %d", name, exp, got))
		}
	}

	check("positions", counts.Vertices, doc.PositionCount())
	check("normals", counts.Normals, doc.NormalCount())
	check("uvs", counts.TexCoords, doc.TexCoordCount())
	check("faces", counts.Faces, doc.FaceCount)
	check("face vertices", counts.FaceVertices, len(doc.Faces))
	check("meshes", counts.Meshes, doc.MeshCount())
	check("mesh offsets", counts.Meshes+1, len(doc.MeshOffsets))
	check("materials", counts.Materials, len(doc.Library.Materials))

	if len(mismatches) != 0 {
		return errors.Errorf("parsed record counts do not match the counting pass: %s", strings.Join(mismatches, "; "))
	}
	return nil
}
