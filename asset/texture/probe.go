package texture

import (
	"github.com/achilleasa/objbuf/asset"
	"github.com/achilleasa/objbuf/asset/wavefront"
	"github.com/achilleasa/objbuf/log"
)

var logger = log.New("texture")

// The outcome of probing a single material texture map.
type Probe struct {
	Material string
	Slot     wavefront.TextureSlot

	// Map path resolved against the library that declared the material.
	Path string

	// Header info or nil if the map could not be read.
	Texture *Texture
	Err     error
}

// Probe every populated texture map of a material library. Maps that cannot
// be opened or decoded are reported via the Err field of their Probe entry.
func ProbeLibrary(lib *wavefront.MaterialLibrary) []Probe {
	probes := make([]Probe, 0)
	for matIndex := range lib.Materials {
		mat := &lib.Materials[matIndex]
		for _, texMap := range mat.Maps() {
			probe := Probe{
				Material: mat.Name,
				Slot:     texMap.Slot,
				Path:     asset.Resolve(texMap.Path, lib.SourceOf(matIndex)),
			}
			probe.Texture, probe.Err = probeFile(probe.Path)
			if probe.Err != nil {
				logger.Warningf("material %q: %s map: %s", mat.Name, texMap.Slot, probe.Err.Error())
			}
			probes = append(probes, probe)
		}
	}

	return probes
}

func probeFile(pathToFile string) (*Texture, error) {
	res, err := asset.NewResource(pathToFile, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return New(res)
}
