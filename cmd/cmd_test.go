package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/objbuf/asset/texture"
	"github.com/achilleasa/objbuf/asset/wavefront"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const triObj = `mtllib tri.mtl
v 0 0 0
v 1 0 0
v 0 1 0
o tri
usemtl flat
f 1 2 3
`

const triMtl = `newmtl flat
Kd 0.5 0.5 0.5
map_Kd flat.png
`

func writeScene(t *testing.T) string {
	dir := t.TempDir()
	files := map[string]string{
		"tri.obj": triObj,
		"tri.mtl": triMtl,
	}
	for name, payload := range files {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte(payload), os.ModePerm); err != nil {
			t.Fatal(err)
		}
	}
	return filepath.Join(dir, "tri.obj")
}

// Run a command through a cli app mirroring the global flags of the binary.
func runApp(t *testing.T, out *bytes.Buffer, args ...string) error {
	app := cli.NewApp()
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v"},
		cli.BoolFlag{Name: "vv"},
		cli.StringFlag{Name: "config, c"},
	}
	app.Commands = []cli.Command{
		{
			Name:   "dump",
			Flags:  []cli.Flag{cli.BoolFlag{Name: "raw"}},
			Action: Dump,
		},
		{
			Name: "compile",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "out, o"},
				cli.BoolFlag{Name: "embed-textures"},
			},
			Action: Compile,
		},
		{
			Name:   "inspect",
			Action: Inspect,
		},
		{
			Name:   "textures",
			Action: Textures,
		},
	}

	return app.Run(append([]string{"objbuf"}, args...))
}

func TestDumpCommand(t *testing.T) {
	objFile := writeScene(t)

	var out bytes.Buffer
	if err := runApp(t, &out, "dump", objFile); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "nfacevertices: 3") {
		t.Fatalf("expected dump output to list 3 face vertices; got:\n%s", out.String())
	}

	out.Reset()
	if err := runApp(t, &out, "dump", "--raw", objFile); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "wavefront.Document") {
		t.Fatalf("expected raw dump to describe the document type; got:\n%s", out.String())
	}
}

func TestCompileCommand(t *testing.T) {
	objFile := writeScene(t)

	var out bytes.Buffer
	if err := runApp(t, &out, "compile", objFile); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(outputName(objFile)); err != nil {
		t.Fatalf("expected compile to create %s; got %v", outputName(objFile), err)
	}

	gltfFile := filepath.Join(filepath.Dir(objFile), "custom.gltf")
	if err := runApp(t, &out, "compile", "-o", gltfFile, objFile); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(gltfFile); err != nil {
		t.Fatalf("expected compile to create %s; got %v", gltfFile, err)
	}
}

func TestCommandsUseConfig(t *testing.T) {
	objFile := writeScene(t)
	dir := filepath.Dir(objFile)

	// Bind an unknown material; the default policy rejects it.
	if err := ioutil.WriteFile(objFile, []byte(strings.Replace(triObj, "usemtl flat", "usemtl unknown", 1)), os.ModePerm); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := runApp(t, &out, "inspect", objFile)
	if !wavefront.IsKind(err, wavefront.UnresolvedReference) {
		t.Fatalf("expected an UnresolvedReference error; got %v", err)
	}

	cfgFile := filepath.Join(dir, "objbuf.yaml")
	if err = ioutil.WriteFile(cfgFile, []byte("log_level: error\nreader:\n  unresolved_material: ignore\n"), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err = runApp(t, &out, "-c", cfgFile, "inspect", objFile); err != nil {
		t.Fatal(err)
	}
	if err = runApp(t, &out, "-c", filepath.Join(dir, "missing.yaml"), "inspect", objFile); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestTexturesCommand(t *testing.T) {
	objFile := writeScene(t)

	// flat.png does not exist; the command reports it without failing.
	var out bytes.Buffer
	if err := runApp(t, &out, "textures", objFile); err != nil {
		t.Fatal(err)
	}
}

func TestMaterialTable(t *testing.T) {
	doc := &wavefront.Document{
		MaterialIndices: []int{0, wavefront.NoMaterial, 0},
		Library: wavefront.MaterialLibrary{
			Materials: []wavefront.Material{{Name: "flat", Illum: 2}, {Name: "unused"}},
		},
	}
	doc.Library.Materials[0].TextureMaps[wavefront.BumpMap] = "bump.png"

	out := materialTable(doc)
	for _, exp := range []string{"flat", "unused", "bump", "TOTAL"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected material table to contain %q; got:\n%s", exp, out)
		}
	}
	if !strings.Contains(out, "| bump | 2      |") {
		t.Fatalf("expected flat material to be bound to 2 meshes; got:\n%s", out)
	}
}

func TestTextureTable(t *testing.T) {
	probes := []texture.Probe{
		{Material: "a", Slot: wavefront.DiffuseMap, Path: "a.png", Texture: &texture.Texture{Codec: "png", Format: texture.Rgba8, Width: 64, Height: 32}},
		{Material: "b", Slot: wavefront.AlphaMap, Path: "b.tga", Err: &os.PathError{Op: "open", Path: "b.tga", Err: os.ErrNotExist}},
		{Material: "c", Slot: wavefront.BumpMap, Path: "c.png", Err: errors.New("texture: could not read header of c.png")},
	}

	out := textureTable(probes)
	for _, exp := range []string{"64x32", "rgba8", "b.tga", "| missing", "| unreadable"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected texture table to contain %q; got:\n%s", exp, out)
		}
	}
}

func TestOutputName(t *testing.T) {
	type spec struct {
		in  string
		exp string
	}
	specs := []spec{
		{"scene.obj", "scene.glb"},
		{"models/scene.OBJ", "models/scene.glb"},
		{"scene", "scene.glb"},
	}

	for index, s := range specs {
		if got := outputName(s.in); got != s.exp {
			t.Errorf("[spec %d] expected %q; got %q", index, s.exp, got)
		}
	}
}
