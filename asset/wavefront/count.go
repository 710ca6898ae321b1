package wavefront

import (
	"io/ioutil"

	"github.com/achilleasa/objbuf/asset"
)

// Counts holds the exact number of records the parsers will produce for
// each output array.
type Counts struct {
	Vertices  int
	Normals   int
	TexCoords int

	// Faces as written and face-vertices after triangulation.
	Faces        int
	FaceVertices int

	Meshes    int
	Materials int
}

// A material library loaded by the counting pass.
type materialSource struct {
	path string
	data []byte

	// Location of the mtllib directive that referenced this library.
	refFile string
	refLine int
}

// Return the number of face-vertex records produced by triangulating a
// face with n vertex references.
func faceVertexCount(n int) int {
	if n > 3 {
		return (n - 2) * 3
	}
	return n
}

// Scan the geometry data and count every record type. Referenced material
// libraries are loaded (and retained for the material parser) so that their
// material definitions can be counted as well.
func (r *reader) count(path string, data []byte) (Counts, []materialSource, error) {
	var counts Counts
	libs := make([]materialSource, 0)

	err := scanLines(data, r.opts.MaxLineLength, func(lineNum int, lineTokens []string) error {
		switch resolveObjDirective(lineTokens[0]) {
		case objVertex:
			counts.Vertices++
		case objNormal:
			counts.Normals++
		case objTexCoord:
			counts.TexCoords++
		case objMesh:
			counts.Meshes++
		case objFace:
			counts.Faces++
			counts.FaceVertices += faceVertexCount(len(lineTokens) - 1)
		case objMaterialLib:
			libName, err := parseFileName(lineTokens)
			if err != nil {
				return r.emitError(MalformedInput, path, lineNum, "%s", err.Error())
			}

			lib, err := r.loadMaterialLib(asset.Resolve(libName, path), path, lineNum)
			if err != nil {
				return err
			}

			libCount, err := r.countMaterials(lib)
			if err != nil {
				return err
			}
			counts.Materials += libCount
			libs = append(libs, lib)
		}
		return nil
	})
	if pErr, ok := err.(*ParseError); ok && pErr.File == "" {
		pErr.File = path
	}

	return counts, libs, err
}

// Load the contents of a material library.
func (r *reader) loadMaterialLib(libPath, refFile string, refLine int) (materialSource, error) {
	res, err := asset.NewResource(libPath, nil)
	if err != nil {
		return materialSource{}, r.openError(libPath, refFile, refLine, err)
	}
	defer res.Close()

	data, err := ioutil.ReadAll(res)
	if err != nil {
		return materialSource{}, r.openError(libPath, refFile, refLine, err)
	}

	return materialSource{
		path:    libPath,
		data:    data,
		refFile: refFile,
		refLine: refLine,
	}, nil
}

// Count the material definitions in a material library.
func (r *reader) countMaterials(lib materialSource) (int, error) {
	count := 0
	err := scanLines(lib.data, r.opts.MaxLineLength, func(_ int, lineTokens []string) error {
		if resolveMtlDirective(lineTokens[0]) == mtlNewMaterial {
			count++
		}
		return nil
	})
	if pErr, ok := err.(*ParseError); ok && pErr.File == "" {
		pErr.File = lib.path
	}
	return count, err
}
