package wavefront

// Fill the interleaved buffer with one record per face-vertex. Attributes
// with a 0 index are left zeroed.
func (r *reader) buildBuffer() error {
	doc := r.doc
	positions, uvs, normals := doc.PositionCount(), doc.TexCoordCount(), doc.NormalCount()

	bufLen := VertexStride * len(doc.Faces)
	if cap(doc.Buffer) < bufLen {
		doc.Buffer = make([]float32, bufLen)
	}
	doc.Buffer = doc.Buffer[:bufLen]

	for index, fv := range doc.Faces {
		record := doc.Buffer[index*VertexStride : (index+1)*VertexStride]

		if fv.Position != 0 {
			if fv.Position < 0 || int(fv.Position) > positions {
				return r.indexError(index, "position", fv.Position, positions)
			}
			copy(record[PositionOffset:PositionOffset+3], doc.Positions[3*(fv.Position-1):])
		}

		if fv.TexCoord != 0 {
			if fv.TexCoord < 0 || int(fv.TexCoord) > uvs {
				return r.indexError(index, "uv", fv.TexCoord, uvs)
			}
			copy(record[TexCoordOffset:TexCoordOffset+2], doc.TexCoords[2*(fv.TexCoord-1):])
		}

		if fv.Normal != 0 {
			if fv.Normal < 0 || int(fv.Normal) > normals {
				return r.indexError(index, "normal", fv.Normal, normals)
			}
			copy(record[NormalOffset:NormalOffset+3], doc.Normals[3*(fv.Normal-1):])
		}
	}

	return nil
}

func (r *reader) indexError(faceVertex int, attribute string, index int32, available int) error {
	return r.emitError(
		MalformedInput, r.doc.Path, 0,
		"face vertex %d references %s %d; only %d %ss defined", faceVertex, attribute, index, available, attribute,
	)
}
