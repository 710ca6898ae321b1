package wavefront

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/achilleasa/objbuf/types"
	"github.com/olekukonko/tablewriter"
)

// NoMaterial is the material index of meshes without a (resolved) material
// binding and the result of failed material lookups.
const NoMaterial = -1

// Interleaved buffer layout. Each face-vertex occupies VertexStride floats:
// position (3), texture coordinates (2) and normal (3).
const (
	VertexStride   = 8
	PositionOffset = 0
	TexCoordOffset = 3
	NormalOffset   = 5
)

// A corner of a triangle. Each field is a 1-based index into the matching
// attribute array or 0 if the attribute was not supplied.
type FaceVertex struct {
	Position int32
	TexCoord int32
	Normal   int32
}

// TextureSlot identifies one of the optional texture maps of a material.
type TextureSlot int

const (
	AmbientMap TextureSlot = iota
	DiffuseMap
	SpecularMap
	HighlightMap
	AlphaMap
	BumpMap

	NumTextureSlots
)

var textureSlotNames = [NumTextureSlots]string{
	"ambient",
	"diffuse",
	"specular",
	"highlight",
	"alpha",
	"bump",
}

func (s TextureSlot) String() string {
	if s < 0 || s >= NumTextureSlots {
		return fmt.Sprintf("TextureSlot(%d)", int(s))
	}
	return textureSlotNames[s]
}

// A populated texture map slot.
type TextureMap struct {
	Slot TextureSlot
	Path string
}

type Material struct {
	Name string

	Ambient  types.Vec3
	Diffuse  types.Vec3
	Specular types.Vec3
	Emissive types.Vec3

	Shininess    float32
	Refraction   float32
	Transparency float32

	// Illumination model.
	Illum int

	// Texture map paths indexed by TextureSlot; empty if not set. Paths are
	// stored as written in the library.
	TextureMaps [NumTextureSlots]string
}

// Return the populated texture maps in slot order.
func (m *Material) Maps() []TextureMap {
	maps := make([]TextureMap, 0)
	for slot, path := range m.TextureMaps {
		if path != "" {
			maps = append(maps, TextureMap{Slot: TextureSlot(slot), Path: path})
		}
	}
	return maps
}

type MaterialLibrary struct {
	// Resolved path of the most recently declared library.
	Path string

	// Resolved paths of all declared libraries in declaration order.
	Sources []string

	// Materials in declaration order.
	Materials []Material

	// Index into Sources of the library defining each material.
	Origins []int
}

// Return the resolved path of the library that defines a material. Texture
// map paths are relative to this path.
func (lib *MaterialLibrary) SourceOf(matIndex int) string {
	if matIndex < 0 || matIndex >= len(lib.Origins) {
		return lib.Path
	}
	return lib.Sources[lib.Origins[matIndex]]
}

// Find the first material with the given name and return its index or
// NoMaterial if no such material exists.
func (lib *MaterialLibrary) Index(name string) int {
	for index := range lib.Materials {
		if lib.Materials[index].Name == name {
			return index
		}
	}
	return NoMaterial
}

// A parsed geometry file.
type Document struct {
	// Path of the geometry file.
	Path string

	// Number of faces as written in the geometry file (before triangulation).
	FaceCount int

	// Flat attribute arrays: 3 floats per position and normal, 2 per texcoord.
	Positions []float32
	Normals   []float32
	TexCoords []float32

	// Triangulated face-vertices; every 3 consecutive entries form a triangle.
	Faces []FaceVertex

	// Mesh i owns Faces[MeshOffsets[i]:MeshOffsets[i+1]]. The final entry
	// equals len(Faces). Faces declared before the first mesh occupy
	// Faces[:MeshOffsets[0]].
	MeshOffsets []int

	// Mesh names (empty when the mesh-start directive omits one).
	MeshNames []string

	// Index into Library.Materials for each mesh, or NoMaterial.
	MaterialIndices []int

	// Interleaved per face-vertex records of VertexStride floats.
	Buffer []float32

	Library MaterialLibrary
}

// Return the number of meshes.
func (doc *Document) MeshCount() int {
	return len(doc.MaterialIndices)
}

// Return the half-open face-vertex range owned by a mesh.
func (doc *Document) MeshRange(mesh int) (start, end int) {
	return doc.MeshOffsets[mesh], doc.MeshOffsets[mesh+1]
}

// Return the material bound to a mesh or nil.
func (doc *Document) MeshMaterial(mesh int) *Material {
	matIndex := doc.MaterialIndices[mesh]
	if matIndex == NoMaterial {
		return nil
	}
	return &doc.Library.Materials[matIndex]
}

// Return the number of parsed positions.
func (doc *Document) PositionCount() int {
	return len(doc.Positions) / 3
}

// Return the number of parsed normals.
func (doc *Document) NormalCount() int {
	return len(doc.Normals) / 3
}

// Return the number of parsed texture coordinates.
func (doc *Document) TexCoordCount() int {
	return len(doc.TexCoords) / 2
}

// Return the position at a 0-based index.
func (doc *Document) Position(index int) types.Vec3 {
	return types.XYZ(doc.Positions[3*index], doc.Positions[3*index+1], doc.Positions[3*index+2])
}

// Return the normal at a 0-based index.
func (doc *Document) Normal(index int) types.Vec3 {
	return types.XYZ(doc.Normals[3*index], doc.Normals[3*index+1], doc.Normals[3*index+2])
}

// Return the texture coordinates at a 0-based index.
func (doc *Document) TexCoord(index int) types.Vec2 {
	return types.XY(doc.TexCoords[2*index], doc.TexCoords[2*index+1])
}

// Return the interleaved record of the face-vertex at a 0-based index.
func (doc *Document) Vertex(index int) []float32 {
	return doc.Buffer[index*VertexStride : (index+1)*VertexStride]
}

// Calculate the axis-aligned bounding box of all positions. Returns false if
// the document defines no positions.
func (doc *Document) Bounds() ([2]types.Vec3, bool) {
	count := doc.PositionCount()
	if count == 0 {
		return [2]types.Vec3{}, false
	}

	bbox := [2]types.Vec3{doc.Position(0), doc.Position(0)}
	for index := 1; index < count; index++ {
		v := doc.Position(index)
		bbox[0] = types.MinVec3(bbox[0], v)
		bbox[1] = types.MaxVec3(bbox[1], v)
	}
	return bbox, true
}

// Release drops all parsed data. It is safe to call on a nil or partially
// populated document and more than once.
func (doc *Document) Release() {
	if doc == nil {
		return
	}

	doc.Positions = nil
	doc.Normals = nil
	doc.TexCoords = nil
	doc.Faces = nil
	doc.MeshOffsets = nil
	doc.MeshNames = nil
	doc.MaterialIndices = nil
	doc.Buffer = nil
	doc.FaceCount = 0

	for index := range doc.Library.Materials {
		doc.Library.Materials[index] = Material{}
	}
	doc.Library = MaterialLibrary{}
}

// Build a tabular representation of document statistics.
func (doc *Document) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Asset Type", "Asset", "Count", "Size"})
	table.Append([]string{"Geometry", "---", "", fmtSize(doc.Positions, doc.Normals, doc.TexCoords)})
	table.Append([]string{"", "Positions", fmt.Sprint(doc.PositionCount()), fmtSize(doc.Positions)})
	table.Append([]string{"", "Normals", fmt.Sprint(doc.NormalCount()), fmtSize(doc.Normals)})
	table.Append([]string{"", "UVs", fmt.Sprint(doc.TexCoordCount()), fmtSize(doc.TexCoords)})
	table.Append([]string{" ", " ", " ", " "})
	table.Append([]string{"Topology", "---", "", fmtSize(doc.Faces, doc.MeshOffsets, doc.MaterialIndices)})
	table.Append([]string{"", "Faces", fmt.Sprint(doc.FaceCount), ""})
	table.Append([]string{"", "Face vertices", fmt.Sprint(len(doc.Faces)), fmtSize(doc.Faces)})
	table.Append([]string{"", "Meshes", fmt.Sprint(doc.MeshCount()), fmtSize(doc.MeshOffsets, doc.MaterialIndices)})
	table.Append([]string{" ", " ", " ", " "})
	table.Append([]string{"Buffer", "---", "", fmtSize(doc.Buffer)})
	table.Append([]string{"", "Interleaved", fmt.Sprint(len(doc.Buffer) / VertexStride), fmtSize(doc.Buffer)})
	table.Append([]string{" ", " ", " ", " "})
	table.Append([]string{"Materials", "---", "", fmtSize(doc.Library.Materials)})
	table.Append([]string{"", "Definitions", fmt.Sprint(len(doc.Library.Materials)), fmtSize(doc.Library.Materials)})
	table.SetFooter([]string{"Total", " ", " ", strings.TrimLeft(fmtSize(doc.Positions, doc.Normals, doc.TexCoords, doc.Faces, doc.MeshOffsets, doc.MaterialIndices, doc.Buffer, doc.Library.Materials), " ")})

	table.Render()
	return buf.String()
}

// Sum the total space used by a set of slices and return back a formatted
// value with the appropriate byte/kb/mb unit.
func fmtSize(items ...interface{}) string {
	var totalBytes float32 = 0.0
	for _, item := range items {
		t := reflect.TypeOf(item)
		v := reflect.ValueOf(item)
		if v.Len() == 0 {
			continue
		}

		totalBytes += float32(int(t.Elem().Size()) * v.Len())
	}

	if totalBytes < 1e3 {
		return fmt.Sprintf("%3d bytes", int(totalBytes))
	} else if totalBytes < 1e6 {
		return fmt.Sprintf("%3.1f kb", totalBytes/1e3)
	}
	return fmt.Sprintf("%5.1f mb", totalBytes/1e6)
}
