package wavefront

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/achilleasa/objbuf/asset"
	"github.com/achilleasa/objbuf/log"
)

type reader struct {
	logger log.Logger
	opts   Options

	// The document under construction.
	doc *Document

	// An error stack that provides additional error information when
	// errors are detected in referenced material libraries.
	errStack []string
}

func newReader(opts Options) *reader {
	return &reader{
		logger:   log.New("wavefront reader"),
		opts:     opts.withDefaults(),
		errStack: make([]string, 0),
	}
}

// Parse the geometry file at path (and any material libraries it references)
// using the default options.
func Parse(path string) (*Document, error) {
	return ParseWithOptions(path, DefaultOptions())
}

// Parse the geometry file at path using the supplied options. The path may
// also be an http/https URL.
func ParseWithOptions(path string, opts Options) (*Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := newReader(opts)
	res, err := asset.NewResource(path, nil)
	if err != nil {
		return nil, r.openError(path, "", 0, err)
	}
	defer res.Close()

	return r.read(res)
}

// Parse a geometry file from an already opened resource. Material libraries
// are resolved relative to the resource path.
func ParseResource(res *asset.Resource, opts Options) (*Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return newReader(opts).read(res)
}

// Run the pipeline: count, allocate, parse materials, parse geometry and
// build the interleaved buffer.
func (r *reader) read(res *asset.Resource) (*Document, error) {
	r.logger.Noticef(`parsing geometry from "%s"`, res.Path())
	start := time.Now()

	data, err := ioutil.ReadAll(res)
	if err != nil {
		return nil, r.emitWrappedError(FileNotFound, res.Path(), 0, err, "could not read file: %s", err.Error())
	}

	counts, libs, err := r.count(res.Path(), data)
	if err != nil {
		return nil, err
	}
	r.logger.Debugf(
		"counted %d positions, %d normals, %d uvs, %d faces (%d face vertices), %d meshes, %d materials",
		counts.Vertices, counts.Normals, counts.TexCoords, counts.Faces, counts.FaceVertices, counts.Meshes, counts.Materials,
	)

	r.doc = allocate(counts)
	r.doc.Path = res.Path()

	for _, lib := range libs {
		if err = r.parseMaterials(lib); err != nil {
			return nil, err
		}
	}

	if err = r.parseGeometry(res.Path(), data); err != nil {
		return nil, err
	}

	if err = r.doc.checkCounts(counts); err != nil {
		return nil, r.emitWrappedError(MalformedInput, res.Path(), 0, err, "%s", err.Error())
	}

	if err = r.buildBuffer(); err != nil {
		return nil, err
	}

	r.logger.Noticef("parsed geometry in %d ms", time.Since(start).Nanoseconds()/1e6)
	return r.doc, nil
}

// Generate an error that also includes any data in the error stack.
func (r *reader) emitError(kind ErrorKind, file string, line int, msgFormat string, args ...interface{}) error {
	return r.emitWrappedError(kind, file, line, nil, msgFormat, args...)
}

func (r *reader) emitWrappedError(kind ErrorKind, file string, line int, cause error, msgFormat string, args ...interface{}) error {
	refs := make([]string, len(r.errStack))
	copy(refs, r.errStack)

	return &ParseError{
		Kind:  kind,
		File:  file,
		Line:  line,
		Msg:   fmt.Sprintf(msgFormat, args...),
		Refs:  refs,
		cause: cause,
	}
}

// Generate an error for a file that could not be opened.
func (r *reader) openError(path, refFile string, refLine int, err error) error {
	if refFile == "" {
		return r.emitWrappedError(FileNotFound, path, 0, err, "could not open file: %s", err.Error())
	}
	return r.emitWrappedError(FileNotFound, refFile, refLine, err, `could not open material library "%s": %s`, path, err.Error())
}

// Push a frame to the error stack.
func (r *reader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *reader) popFrame() {
	r.errStack = r.errStack[1:]
}
