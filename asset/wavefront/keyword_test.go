package wavefront

import "testing"

func TestResolveObjDirective(t *testing.T) {
	type spec struct {
		token string
		exp   objDirective
	}
	specs := []spec{
		{"v", objVertex},
		{"vn", objNormal},
		{"vt", objTexCoord},
		{"f", objFace},
		{"o", objMesh},
		{"usemtl", objUseMaterial},
		{"mtllib", objMaterialLib},
		{"g", objIgnore},
		{"s", objIgnore},
		{"#", objIgnore},
		{"#v", objIgnore},
		{"V", objIgnore},
		{"vp", objIgnore},
	}

	for idx, s := range specs {
		if got := resolveObjDirective(s.token); got != s.exp {
			t.Fatalf("[spec %d] expected token %q to resolve to %d; got %d", idx, s.token, s.exp, got)
		}
	}
}

func TestResolveMtlDirective(t *testing.T) {
	type spec struct {
		token string
		exp   mtlDirective
		slot  TextureSlot
		isMap bool
	}
	specs := []spec{
		{"newmtl", mtlNewMaterial, 0, false},
		{"Ka", mtlAmbient, 0, false},
		{"Kd", mtlDiffuse, 0, false},
		{"Ks", mtlSpecular, 0, false},
		{"Ke", mtlEmissive, 0, false},
		{"Ns", mtlShininess, 0, false},
		{"Ni", mtlRefraction, 0, false},
		{"d", mtlDissolve, 0, false},
		{"illum", mtlIllum, 0, false},
		{"map_Ka", mtlAmbientMap, AmbientMap, true},
		{"map_Kd", mtlDiffuseMap, DiffuseMap, true},
		{"map_Ks", mtlSpecularMap, SpecularMap, true},
		{"map_Ns", mtlHighlightMap, HighlightMap, true},
		{"map_d", mtlAlphaMap, AlphaMap, true},
		{"map_bump", mtlBumpMap, BumpMap, true},
		{"Tf", mtlIgnore, 0, false},
		{"bump", mtlIgnore, 0, false},
		{"# comment", mtlIgnore, 0, false},
	}

	for idx, s := range specs {
		got := resolveMtlDirective(s.token)
		if got != s.exp {
			t.Fatalf("[spec %d] expected token %q to resolve to %d; got %d", idx, s.token, s.exp, got)
		}

		slot, isMap := got.textureSlot()
		if isMap != s.isMap || slot != s.slot {
			t.Fatalf("[spec %d] expected texture slot (%v, %t); got (%v, %t)", idx, s.slot, s.isMap, slot, isMap)
		}
	}
}
