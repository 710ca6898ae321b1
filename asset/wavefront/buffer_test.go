package wavefront

import (
	"reflect"
	"testing"
)

func TestBufferRejectsOutOfRangeIndices(t *testing.T) {
	type spec struct {
		payload string
		expMsg  string
	}
	specs := []spec{
		{"v 0 0 0\nv 1 0 0\nf 1 2 3\n", "face vertex 2 references position 3; only 2 positions defined"},
		{"v 0 0 0\nvt 0 0\nf 1/1 1/2 1/1\n", "face vertex 1 references uv 2; only 1 uvs defined"},
		{"v 0 0 0\nf 1//1 1 1\n", "face vertex 0 references normal 1; only 0 normals defined"},
		{"v 0 0 0\nf -1 1 1\n", "face vertex 0 references position -1; only 1 positions defined"},
	}

	for idx, s := range specs {
		_, err := ParseResource(mockResource(s.payload), DefaultOptions())
		if !IsKind(err, MalformedInput) {
			t.Fatalf("[spec %d] expected a MalformedInput error; got %v", idx, err)
		}
		if pErr := err.(*ParseError); pErr.Msg != s.expMsg {
			t.Fatalf("[spec %d] expected error %q; got %q", idx, s.expMsg, pErr.Msg)
		}
	}
}

func TestBufferSentinelSlotsStayZero(t *testing.T) {
	r := newReader(DefaultOptions())
	r.doc = allocate(Counts{Vertices: 1, Normals: 1, TexCoords: 1, FaceVertices: 3})
	r.doc.Positions = append(r.doc.Positions, 1, 2, 3)
	r.doc.TexCoords = append(r.doc.TexCoords, 4, 5)
	r.doc.Normals = append(r.doc.Normals, 6, 7, 8)
	r.doc.Faces = append(r.doc.Faces, FaceVertex{0, 1, 1}, FaceVertex{1, 0, 1}, FaceVertex{1, 1, 0})

	if err := r.buildBuffer(); err != nil {
		t.Fatal(err)
	}

	exp := []float32{
		0, 0, 0, 4, 5, 6, 7, 8,
		1, 2, 3, 0, 0, 6, 7, 8,
		1, 2, 3, 4, 5, 0, 0, 0,
	}
	if !reflect.DeepEqual(r.doc.Buffer, exp) {
		t.Fatalf("expected buffer %v; got %v", exp, r.doc.Buffer)
	}
}

func TestBufferGrowsWithoutPreallocation(t *testing.T) {
	r := newReader(DefaultOptions())
	r.doc = &Document{
		Positions: []float32{1, 1, 1},
		Faces:     []FaceVertex{{1, 0, 0}},
	}

	if err := r.buildBuffer(); err != nil {
		t.Fatal(err)
	}
	if exp := []float32{1, 1, 1, 0, 0, 0, 0, 0}; !reflect.DeepEqual(r.doc.Buffer, exp) {
		t.Fatalf("expected buffer %v; got %v", exp, r.doc.Buffer)
	}
}
