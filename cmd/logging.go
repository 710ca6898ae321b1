package cmd

import (
	"github.com/achilleasa/objbuf/asset/wavefront"
	"github.com/achilleasa/objbuf/config"
	"github.com/achilleasa/objbuf/log"
	"github.com/urfave/cli"
)

var logger = log.New("objbuf")

// Load the config file (if one was specified) and set up logging. The -v and
// -vv flags take precedence over the configured log level.
func setup(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if cfgFile := ctx.GlobalString("config"); cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return nil, err
		}
	}

	cfg.ApplyLogLevel()
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	return cfg, nil
}

func parseArgs(ctx *cli.Context, cfg *config.Config, fn func(*wavefront.Document) error) error {
	if ctx.NArg() == 0 {
		return cli.NewExitError("missing geometry file argument", 1)
	}

	for _, objFile := range ctx.Args() {
		doc, err := wavefront.ParseWithOptions(objFile, cfg.Reader)
		if err != nil {
			return err
		}

		err = fn(doc)
		doc.Release()
		if err != nil {
			return err
		}
	}

	return nil
}
