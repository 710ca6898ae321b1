package wavefront

import (
	"fmt"

	"github.com/pkg/errors"
)

// Parse a material library and append its definitions to the document's
// material table.
func (r *reader) parseMaterials(lib materialSource) error {
	r.logger.Infof(`parsing material library "%s"`, lib.path)

	r.pushFrame(fmt.Sprintf("referenced from %s:%d [mtllib]", lib.refFile, lib.refLine))
	defer r.popFrame()

	matLib := &r.doc.Library
	matLib.Path = lib.path
	matLib.Sources = append(matLib.Sources, lib.path)

	// Index of the material receiving keyed directives.
	curMaterial := NoMaterial

	err := scanLines(lib.data, r.opts.MaxLineLength, func(lineNum int, lineTokens []string) error {
		directive := resolveMtlDirective(lineTokens[0])
		switch directive {
		case mtlIgnore:
			return nil
		case mtlNewMaterial:
			matName, err := parseName(lineTokens)
			if err != nil {
				return r.emitError(MalformedInput, lib.path, lineNum, "%s", err.Error())
			}

			if matLib.Index(matName) != NoMaterial {
				r.logger.Warningf(`[%s: %d] material "%s" already defined; bindings will resolve to the first definition`, lib.path, lineNum, matName)
			}

			matLib.Materials = append(matLib.Materials, Material{Name: matName})
			matLib.Origins = append(matLib.Origins, len(matLib.Sources)-1)
			curMaterial = len(matLib.Materials) - 1
			return nil
		}

		if curMaterial == NoMaterial {
			return r.emitError(MalformedInput, lib.path, lineNum, `got "%s" without a "newmtl"`, lineTokens[0])
		}

		if err := setMaterialField(matLib.Materials, curMaterial, directive, lineTokens); err != nil {
			return r.emitError(MalformedInput, lib.path, lineNum, "%s", err.Error())
		}
		return nil
	})
	if pErr, ok := err.(*ParseError); ok && pErr.File == "" {
		pErr.File = lib.path
	}

	return err
}

// Apply a keyed directive to the material at matIndex.
func setMaterialField(materials []Material, matIndex int, directive mtlDirective, lineTokens []string) error {
	var err error
	mat := &materials[matIndex]

	switch directive {
	case mtlAmbient:
		mat.Ambient, err = parseVec3(lineTokens)
	case mtlDiffuse:
		mat.Diffuse, err = parseVec3(lineTokens)
	case mtlSpecular:
		mat.Specular, err = parseVec3(lineTokens)
	case mtlEmissive:
		mat.Emissive, err = parseVec3(lineTokens)
	case mtlShininess:
		mat.Shininess, err = parseFloat32(lineTokens)
	case mtlRefraction:
		mat.Refraction, err = parseFloat32(lineTokens)
	case mtlDissolve:
		mat.Transparency, err = parseFloat32(lineTokens)
	case mtlIllum:
		mat.Illum, err = parseInt(lineTokens)
	default:
		slot, isMap := directive.textureSlot()
		if !isMap {
			return errors.Errorf(`unsupported material directive "%s"`, lineTokens[0])
		}

		var path string
		if path, err = parseName(lineTokens); err == nil {
			mat.TextureMaps[slot] = path
		}
	}

	return err
}
