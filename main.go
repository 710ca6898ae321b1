package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/objbuf/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "objbuf"
	app.Usage = "parse wavefront obj/mtl files into render-ready buffers"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load settings from a yaml config file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "inspect",
			Usage:     "display geometry and material statistics",
			ArgsUsage: "file1.obj file2.obj ...",
			Action:    cmd.Inspect,
		},
		{
			Name:  "dump",
			Usage: "print the parsed arrays of a geometry file",
			Description: `
Parse a wavefront obj file together with its material libraries and print
every parsed array: positions, normals, texture coordinates, mesh offsets,
triangulated faces, the interleaved vertex buffer and the material table.`,
			ArgsUsage: "file1.obj file2.obj ...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "raw",
					Usage: "dump the parsed document structure instead",
				},
			},
			Action: cmd.Dump,
		},
		{
			Name:  "compile",
			Usage: "export geometry files to glTF",
			Description: `
Parse a wavefront obj file and export its meshes and materials as a glTF
document. The output is written next to the input file using the .glb
extension unless --out is specified; an output file with a .gltf extension
is written using the JSON encoding.`,
			ArgsUsage: "file1.obj file2.obj ...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output filename (single input file only)",
				},
				cli.BoolFlag{
					Name:  "embed-textures",
					Usage: "embed png/jpeg diffuse maps in the exported file",
				},
			},
			Action: cmd.Compile,
		},
		{
			Name:      "textures",
			Usage:     "probe the texture maps referenced by material libraries",
			ArgsUsage: "file1.obj file2.obj ...",
			Action:    cmd.Textures,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
