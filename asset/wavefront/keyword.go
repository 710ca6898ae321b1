package wavefront

// Geometry file directives.
type objDirective int

const (
	objIgnore objDirective = iota
	objVertex
	objNormal
	objTexCoord
	objFace
	objMesh
	objUseMaterial
	objMaterialLib
)

var objDirectives = map[string]objDirective{
	"v":      objVertex,
	"vn":     objNormal,
	"vt":     objTexCoord,
	"f":      objFace,
	"o":      objMesh,
	"usemtl": objUseMaterial,
	"mtllib": objMaterialLib,
}

// Material library directives.
type mtlDirective int

const (
	mtlIgnore mtlDirective = iota
	mtlNewMaterial
	mtlAmbient
	mtlDiffuse
	mtlSpecular
	mtlEmissive
	mtlShininess
	mtlRefraction
	mtlDissolve
	mtlIllum
	mtlAmbientMap
	mtlDiffuseMap
	mtlSpecularMap
	mtlHighlightMap
	mtlAlphaMap
	mtlBumpMap
)

var mtlDirectives = map[string]mtlDirective{
	"newmtl":   mtlNewMaterial,
	"Ka":       mtlAmbient,
	"Kd":       mtlDiffuse,
	"Ks":       mtlSpecular,
	"Ke":       mtlEmissive,
	"Ns":       mtlShininess,
	"Ni":       mtlRefraction,
	"d":        mtlDissolve,
	"illum":    mtlIllum,
	"map_Ka":   mtlAmbientMap,
	"map_Kd":   mtlDiffuseMap,
	"map_Ks":   mtlSpecularMap,
	"map_Ns":   mtlHighlightMap,
	"map_d":    mtlAlphaMap,
	"map_bump": mtlBumpMap,
}

// Map the leading token of a geometry line to a directive. Unknown tokens
// (comments included) map to objIgnore.
func resolveObjDirective(token string) objDirective {
	return objDirectives[token]
}

// Map the leading token of a material library line to a directive. Unknown
// tokens map to mtlIgnore.
func resolveMtlDirective(token string) mtlDirective {
	return mtlDirectives[token]
}

// Return the texture slot populated by a map_* directive.
func (d mtlDirective) textureSlot() (TextureSlot, bool) {
	switch d {
	case mtlAmbientMap:
		return AmbientMap, true
	case mtlDiffuseMap:
		return DiffuseMap, true
	case mtlSpecularMap:
		return SpecularMap, true
	case mtlHighlightMap:
		return HighlightMap, true
	case mtlAlphaMap:
		return AlphaMap, true
	case mtlBumpMap:
		return BumpMap, true
	}
	return 0, false
}
