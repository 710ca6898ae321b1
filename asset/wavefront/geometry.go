package wavefront

// Parse the geometry data into the preallocated document arrays.
func (r *reader) parseGeometry(path string, data []byte) error {
	doc := r.doc

	// Index of the most recently started mesh.
	curMesh := -1
	refs := make([]FaceVertex, 0, 8)

	err := scanLines(data, r.opts.MaxLineLength, func(lineNum int, lineTokens []string) error {
		switch resolveObjDirective(lineTokens[0]) {
		case objVertex:
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(MalformedInput, path, lineNum, "%s", err.Error())
			}
			doc.Positions = append(doc.Positions, v[0], v[1], v[2])
		case objNormal:
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(MalformedInput, path, lineNum, "%s", err.Error())
			}
			doc.Normals = append(doc.Normals, v[0], v[1], v[2])
		case objTexCoord:
			v, err := parseVec2(lineTokens)
			if err != nil {
				return r.emitError(MalformedInput, path, lineNum, "%s", err.Error())
			}
			doc.TexCoords = append(doc.TexCoords, v[0], v[1])
		case objMesh:
			var meshName string
			if len(lineTokens) > 1 {
				meshName = lineTokens[1]
			}

			doc.MeshOffsets = append(doc.MeshOffsets, len(doc.Faces))
			doc.MeshNames = append(doc.MeshNames, meshName)
			doc.MaterialIndices = append(doc.MaterialIndices, NoMaterial)
			curMesh = len(doc.MaterialIndices) - 1
		case objUseMaterial:
			matName, err := parseName(lineTokens)
			if err != nil {
				return r.emitError(MalformedInput, path, lineNum, "%s", err.Error())
			}

			if curMesh == -1 {
				r.logger.Warningf(`[%s: %d] ignoring material "%s" bound before any mesh`, path, lineNum, matName)
				return nil
			}

			matIndex := doc.Library.Index(matName)
			if matIndex == NoMaterial {
				if r.opts.UnresolvedMaterial == IgnoreUnresolved {
					r.logger.Warningf(`[%s: %d] undefined material with name "%s"; mesh %d left without a material`, path, lineNum, matName, curMesh)
					return nil
				}
				return r.emitError(UnresolvedReference, path, lineNum, `undefined material with name "%s"`, matName)
			}
			doc.MaterialIndices[curMesh] = matIndex
		case objFace:
			if len(lineTokens) < 4 {
				return r.emitError(MalformedInput, path, lineNum, `unsupported syntax for "f"; expected at least 3 vertex references; got %d`, len(lineTokens)-1)
			}

			refs = refs[:0]
			for _, token := range lineTokens[1:] {
				refs = append(refs, parseFaceVertex(token))
			}
			doc.Faces = triangulate(doc.Faces, refs)
			doc.FaceCount++
		}
		return nil
	})
	if pErr, ok := err.(*ParseError); ok && pErr.File == "" {
		pErr.File = path
	}
	if err != nil {
		return err
	}

	doc.MeshOffsets = append(doc.MeshOffsets, len(doc.Faces))
	return nil
}
