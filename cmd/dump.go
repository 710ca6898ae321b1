package cmd

import (
	"github.com/achilleasa/objbuf/asset/wavefront"
	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
}

// Print the parsed contents of one or more geometry files.
func Dump(ctx *cli.Context) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}

	return parseArgs(ctx, cfg, func(doc *wavefront.Document) error {
		if ctx.Bool("raw") {
			spewConfig.Fdump(ctx.App.Writer, doc)
			return nil
		}
		return doc.Dump(ctx.App.Writer)
	})
}
