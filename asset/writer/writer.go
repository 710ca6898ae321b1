package writer

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/achilleasa/objbuf/asset/wavefront"
	"github.com/achilleasa/objbuf/log"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// Options control the glTF export.
type Options struct {
	// Mark exported materials as double sided.
	DoubleSided bool `yaml:"double_sided"`

	// Embed diffuse texture maps (png/jpeg only) into the exported buffer.
	EmbedTextures bool `yaml:"embed_textures"`
}

type gltfWriter struct {
	logger log.Logger
	opts   Options

	src *wavefront.Document
	dst *gltf.Document

	// Index of the exported gltf material for each library material.
	materials []*uint32
}

// Convert a parsed wavefront document into a glTF document. Texture maps that
// cannot be embedded are logged and skipped.
func Build(doc *wavefront.Document, opts Options) (*gltf.Document, error) {
	if doc == nil || doc.MeshOffsets == nil {
		return nil, errors.New("writer: document has no parsed geometry")
	}

	w := &gltfWriter{
		logger: log.New("gltf writer"),
		opts:   opts,
		src:    doc,
		dst:    gltf.NewDocument(),
	}

	start := time.Now()
	w.writeMaterials()
	w.writeMeshes()

	w.logger.Debugf("built glTF document with %d meshes and %d materials in %d ms", len(w.dst.Meshes), len(w.dst.Materials), time.Since(start).Nanoseconds()/1e6)
	return w.dst, nil
}

// Encode a glTF document to w. Binary documents use the GLB container; text
// documents embed their buffers as base64 data URIs.
func Encode(w io.Writer, doc *gltf.Document, binary bool) error {
	if !binary {
		for _, buf := range doc.Buffers {
			if buf.URI == "" && len(buf.Data) != 0 {
				buf.URI = "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf.Data)
			}
		}
	}

	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = binary
	return encoder.Encode(doc)
}

// Export a wavefront document to filename. The ".gltf" extension selects the
// JSON encoding; anything else produces a binary GLB file.
func WriteFile(doc *wavefront.Document, filename string, opts Options) error {
	gltfDoc, err := Build(doc, opts)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = Encode(&buf, gltfDoc, !IsText(filename)); err != nil {
		return errors.Wrapf(err, "writer: could not encode %s", filename)
	}

	if dir := filepath.Dir(filename); dir != "" {
		if err = os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrapf(err, "writer: could not create output folder for %s", filename)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "writer: could not create %s", filename)
	}
	defer f.Close()

	if _, err = io.Copy(f, &buf); err != nil {
		return errors.Wrapf(err, "writer: could not write %s", filename)
	}
	return nil
}

// Returns true if filename selects the JSON glTF encoding.
func IsText(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".gltf"
}
