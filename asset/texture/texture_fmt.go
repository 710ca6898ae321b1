package texture

import (
	"fmt"
	"image/color"
)

type Format uint32

const (
	Unknown Format = iota
	Luminance8
	Luminance16
	Rgba8
	Rgba16
	Paletted
)

var formatNames = map[Format]string{
	Unknown:     "unknown",
	Luminance8:  "luminance8",
	Luminance16: "luminance16",
	Rgba8:       "rgba8",
	Rgba16:      "rgba16",
	Paletted:    "paletted",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}

// Map an image color model to a texel format.
func formatOf(model color.Model) Format {
	switch model {
	case color.GrayModel:
		return Luminance8
	case color.Gray16Model:
		return Luminance16
	case color.RGBAModel, color.NRGBAModel, color.YCbCrModel, color.NYCbCrAModel, color.CMYKModel:
		return Rgba8
	case color.RGBA64Model, color.NRGBA64Model:
		return Rgba16
	}

	if _, isPalette := model.(color.Palette); isPalette {
		return Paletted
	}
	return Unknown
}
