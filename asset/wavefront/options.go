package wavefront

import "github.com/pkg/errors"

// MaterialPolicy controls how material bindings that name an unknown
// material are handled.
type MaterialPolicy string

const (
	// Fail the parse with an UnresolvedReference error.
	FailOnUnresolved MaterialPolicy = "error"

	// Log a warning and leave the mesh without a material.
	IgnoreUnresolved MaterialPolicy = "ignore"
)

const defaultMaxLineLength = 1 << 20

// Options tune the parser behavior.
type Options struct {
	UnresolvedMaterial MaterialPolicy `yaml:"unresolved_material"`

	// The longest line (in bytes) accepted by the line scanner.
	MaxLineLength int `yaml:"max_line_length"`
}

// DefaultOptions returns the options used by Parse.
func DefaultOptions() Options {
	return Options{
		UnresolvedMaterial: FailOnUnresolved,
		MaxLineLength:      defaultMaxLineLength,
	}
}

// Validate checks the option values. Zero values are valid and select the
// defaults.
func (o Options) Validate() error {
	switch o.UnresolvedMaterial {
	case "", FailOnUnresolved, IgnoreUnresolved:
	default:
		return errors.Errorf("wavefront: unsupported unresolved material policy %q; expected %q or %q", o.UnresolvedMaterial, FailOnUnresolved, IgnoreUnresolved)
	}

	if o.MaxLineLength < 0 {
		return errors.Errorf("wavefront: max line length must not be negative; got %d", o.MaxLineLength)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.UnresolvedMaterial == "" {
		o.UnresolvedMaterial = FailOnUnresolved
	}
	if o.MaxLineLength == 0 {
		o.MaxLineLength = defaultMaxLineLength
	}
	return o
}
