package wavefront

import "strings"

// Parse a face vertex reference. The following formats are supported:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
//
// Empty or missing fields are set to 0; fields past the third are ignored.
func parseFaceVertex(token string) FaceVertex {
	var indices [3]int32
	for field, indexToken := range strings.SplitN(token, "/", 4) {
		if field == len(indices) {
			break
		}
		if indexToken != "" {
			indices[field] = lenientInt32(indexToken)
		}
	}

	return FaceVertex{
		Position: indices[0],
		TexCoord: indices[1],
		Normal:   indices[2],
	}
}

// Append the triangulation of a face to dst. Triangles are copied as-is;
// polygons are split into a triangle fan anchored at the first reference:
// (r1,r2,r3), (r1,r3,r4), ..., (r1,rn-1,rn).
func triangulate(dst []FaceVertex, refs []FaceVertex) []FaceVertex {
	if len(refs) <= 3 {
		return append(dst, refs...)
	}

	for i := 1; i < len(refs)-1; i++ {
		dst = append(dst, refs[0], refs[i], refs[i+1])
	}
	return dst
}
