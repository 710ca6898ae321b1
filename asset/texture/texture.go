package texture

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/achilleasa/objbuf/asset"
	"github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

type configDecoder func(io.Reader) (image.Config, error)

// Header decoders keyed by file extension. TGA files carry no signature so
// the codec is always selected by extension rather than by sniffing.
var decoders = map[string]configDecoder{
	".png":  png.DecodeConfig,
	".jpg":  jpeg.DecodeConfig,
	".jpeg": jpeg.DecodeConfig,
	".gif":  gif.DecodeConfig,
	".bmp":  bmp.DecodeConfig,
	".tif":  tiff.DecodeConfig,
	".tiff": tiff.DecodeConfig,
	".webp": webp.DecodeConfig,
	".tga":  tga.DecodeConfig,
}

// Texture metadata extracted from an image header.
type Texture struct {
	Path   string
	Codec  string
	Format Format

	Width  uint32
	Height uint32
}

// Read the image header of a texture Resource. Pixel data is not decoded.
func New(res *asset.Resource) (*Texture, error) {
	ext := extOf(res.Path())
	decodeFn, supported := decoders[ext]
	if !supported {
		return nil, errors.Errorf("texture: unsupported image type %q for %s", ext, res.Path())
	}

	cfg, err := decodeFn(res)
	if err != nil {
		return nil, errors.Wrapf(err, "texture: could not read header of %s", res.Path())
	}

	return &Texture{
		Path:   res.Path(),
		Codec:  strings.TrimPrefix(ext, "."),
		Format: formatOf(cfg.ColorModel),
		Width:  uint32(cfg.Width),
		Height: uint32(cfg.Height),
	}, nil
}

// Return true if the texture file extension maps to a known codec.
func Supported(pathToFile string) bool {
	_, supported := decoders[extOf(pathToFile)]
	return supported
}

func extOf(pathToFile string) string {
	if u, err := url.Parse(pathToFile); err == nil && u.Path != "" {
		pathToFile = u.Path
	}
	return strings.ToLower(path.Ext(pathToFile))
}
