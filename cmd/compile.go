package cmd

import (
	"path/filepath"
	"strings"

	"github.com/achilleasa/objbuf/asset/wavefront"
	"github.com/achilleasa/objbuf/asset/writer"
	"github.com/urfave/cli"
)

// Export geometry files to glTF.
func Compile(ctx *cli.Context) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}

	outFile := ctx.String("out")
	if outFile != "" && ctx.NArg() > 1 {
		return cli.NewExitError("the --out flag can only be used with a single geometry file", 1)
	}

	opts := cfg.Export
	if ctx.Bool("embed-textures") {
		opts.EmbedTextures = true
	}

	return parseArgs(ctx, cfg, func(doc *wavefront.Document) error {
		target := outFile
		if target == "" {
			target = outputName(doc.Path)
		}

		if err := writer.WriteFile(doc, target, opts); err != nil {
			return err
		}

		logger.Noticef("exported %s to %s", doc.Path, target)
		return nil
	})
}

// Derive the glTF output filename for a geometry file.
func outputName(objFile string) string {
	return strings.TrimSuffix(objFile, filepath.Ext(objFile)) + ".glb"
}
