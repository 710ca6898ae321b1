package writer

import (
	"github.com/achilleasa/objbuf/asset/wavefront"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Name of the mesh holding faces declared before the first mesh directive.
const defaultMeshName = "default"

// A face-vertex range exported as a single gltf mesh.
type meshRange struct {
	name     string
	start    int
	end      int
	matIndex int
}

func (w *gltfWriter) meshRanges() []meshRange {
	doc := w.src
	ranges := make([]meshRange, 0, doc.MeshCount()+1)

	if len(doc.MeshOffsets) != 0 && doc.MeshOffsets[0] > 0 {
		ranges = append(ranges, meshRange{name: defaultMeshName, start: 0, end: doc.MeshOffsets[0], matIndex: wavefront.NoMaterial})
	}

	for mesh := 0; mesh < doc.MeshCount(); mesh++ {
		start, end := doc.MeshRange(mesh)
		if start == end {
			continue
		}

		name := doc.MeshNames[mesh]
		if name == "" {
			name = defaultMeshName
		}
		ranges = append(ranges, meshRange{name: name, start: start, end: end, matIndex: doc.MaterialIndices[mesh]})
	}

	return ranges
}

func (w *gltfWriter) writeMeshes() {
	for _, r := range w.meshRanges() {
		meshIndex := uint32(len(w.dst.Meshes))
		w.dst.Meshes = append(w.dst.Meshes, &gltf.Mesh{
			Name:       r.name,
			Primitives: []*gltf.Primitive{w.writePrimitive(r)},
		})

		w.dst.Scenes[0].Nodes = append(w.dst.Scenes[0].Nodes, uint32(len(w.dst.Nodes)))
		w.dst.Nodes = append(w.dst.Nodes, &gltf.Node{
			Name: r.name,
			Mesh: gltf.Index(meshIndex),
		})
	}
}

// Emit the vertex attributes and indices for a face-vertex range. Identical
// face-vertex references are welded into a single gltf vertex.
func (w *gltfWriter) writePrimitive(r meshRange) *gltf.Primitive {
	doc := w.src

	vertexIndex := make(map[wavefront.FaceVertex]uint32)
	indices := make([]uint32, 0, r.end-r.start)
	positions := make([][3]float32, 0)
	normals := make([][3]float32, 0)
	uvs := make([][2]float32, 0)
	hasNormals, hasUVs := true, true

	for fvIndex := r.start; fvIndex < r.end; fvIndex++ {
		fv := doc.Faces[fvIndex]
		hasNormals = hasNormals && fv.Normal != 0
		hasUVs = hasUVs && fv.TexCoord != 0

		if index, seen := vertexIndex[fv]; seen {
			indices = append(indices, index)
			continue
		}

		record := doc.Vertex(fvIndex)
		index := uint32(len(positions))
		vertexIndex[fv] = index
		indices = append(indices, index)

		positions = append(positions, [3]float32{record[wavefront.PositionOffset], record[wavefront.PositionOffset+1], record[wavefront.PositionOffset+2]})
		normals = append(normals, [3]float32{record[wavefront.NormalOffset], record[wavefront.NormalOffset+1], record[wavefront.NormalOffset+2]})

		// glTF places the texture origin at the top-left corner.
		uvs = append(uvs, [2]float32{record[wavefront.TexCoordOffset], 1.0 - record[wavefront.TexCoordOffset+1]})
	}

	attributes := map[string]uint32{
		"POSITION": modeler.WritePosition(w.dst, positions),
	}
	if hasNormals {
		attributes["NORMAL"] = modeler.WriteNormal(w.dst, normals)
	}
	if hasUVs {
		attributes["TEXCOORD_0"] = modeler.WriteTextureCoord(w.dst, uvs)
	}

	primitive := &gltf.Primitive{
		Indices:    gltf.Index(modeler.WriteIndices(w.dst, indices)),
		Attributes: attributes,
	}
	if r.matIndex != wavefront.NoMaterial {
		primitive.Material = w.materials[r.matIndex]
	}

	return primitive
}
