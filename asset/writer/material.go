package writer

import (
	"math"
	"path"
	"strings"

	"github.com/achilleasa/objbuf/asset"
	"github.com/achilleasa/objbuf/asset/wavefront"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var imageMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

func (w *gltfWriter) writeMaterials() {
	lib := &w.src.Library
	w.materials = make([]*uint32, len(lib.Materials))

	for matIndex := range lib.Materials {
		mat := &lib.Materials[matIndex]

		baseColor := &[4]float32{mat.Diffuse[0], mat.Diffuse[1], mat.Diffuse[2], 1.0}
		metallic := float32(0)
		roughness := shininessToRoughness(mat.Shininess)

		gltfMaterial := &gltf.Material{
			Name:           mat.Name,
			DoubleSided:    w.opts.DoubleSided,
			EmissiveFactor: [3]float32{mat.Emissive[0], mat.Emissive[1], mat.Emissive[2]},
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: baseColor,
				MetallicFactor:  &metallic,
				RoughnessFactor: &roughness,
			},
		}

		// A dissolve of 0 is indistinguishable from an unset value.
		if mat.Transparency > 0 && mat.Transparency < 1 {
			baseColor[3] = mat.Transparency
			gltfMaterial.AlphaMode = gltf.AlphaBlend
		}

		if texPath := mat.TextureMaps[wavefront.DiffuseMap]; texPath != "" && w.opts.EmbedTextures {
			texIndex, err := w.writeTexture(asset.Resolve(texPath, lib.SourceOf(matIndex)))
			if err != nil {
				w.logger.Warningf("material %q: skipping diffuse map: %s", mat.Name, err.Error())
			} else {
				gltfMaterial.PBRMetallicRoughness.BaseColorTexture = &gltf.TextureInfo{
					Index: texIndex,
				}
			}
		}

		w.materials[matIndex] = gltf.Index(uint32(len(w.dst.Materials)))
		w.dst.Materials = append(w.dst.Materials, gltfMaterial)
	}
}

// Embed a texture image and return the index of its gltf texture.
func (w *gltfWriter) writeTexture(texPath string) (uint32, error) {
	mimeType, supported := imageMimeTypes[strings.ToLower(path.Ext(texPath))]
	if !supported {
		return 0, errors.Errorf("unsupported image type for %s; only png and jpeg images can be embedded", texPath)
	}

	res, err := asset.NewResource(texPath, nil)
	if err != nil {
		return 0, err
	}
	defer res.Close()

	imageIndex, err := modeler.WriteImage(w.dst, path.Base(texPath), mimeType, res)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to write gltf image")
	}

	samplerIndex := uint32(len(w.dst.Samplers))
	w.dst.Samplers = append(w.dst.Samplers, &gltf.Sampler{
		WrapS: gltf.WrapRepeat,
		WrapT: gltf.WrapRepeat,
	})

	texIndex := uint32(len(w.dst.Textures))
	w.dst.Textures = append(w.dst.Textures, &gltf.Texture{
		Name:    path.Base(texPath),
		Sampler: gltf.Index(samplerIndex),
		Source:  gltf.Index(imageIndex),
	})

	return texIndex, nil
}

// Map a Phong specular exponent to a PBR roughness value.
func shininessToRoughness(shininess float32) float32 {
	if shininess <= 0 {
		return 1.0
	}
	return float32(math.Sqrt(2.0 / (float64(shininess) + 2.0)))
}
