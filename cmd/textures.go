package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/objbuf/asset"
	"github.com/achilleasa/objbuf/asset/texture"
	"github.com/achilleasa/objbuf/asset/wavefront"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Probe the texture maps referenced by the materials of one or more geometry
// files. Missing and unreadable maps are reported but do not fail the command.
func Textures(ctx *cli.Context) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}

	return parseArgs(ctx, cfg, func(doc *wavefront.Document) error {
		probes := texture.ProbeLibrary(&doc.Library)
		if len(probes) == 0 {
			logger.Noticef("%s: no texture maps defined", doc.Path)
			return nil
		}

		logger.Noticef("%s texture maps\n%s", doc.Path, textureTable(probes))
		return nil
	})
}

func textureTable(probes []texture.Probe) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Material", "Slot", "Path", "Codec", "Format", "Dimensions"})

	var missing, unreadable int
	for _, probe := range probes {
		if probe.Err != nil {
			status := "unreadable"
			if asset.IsNotFound(probe.Err) {
				status = "missing"
				missing++
			} else {
				unreadable++
			}
			table.Append([]string{probe.Material, probe.Slot.String(), probe.Path, "-", "-", status})
			continue
		}

		table.Append([]string{
			probe.Material,
			probe.Slot.String(),
			probe.Path,
			probe.Texture.Codec,
			probe.Texture.Format.String(),
			fmt.Sprintf("%dx%d", probe.Texture.Width, probe.Texture.Height),
		})
	}
	table.SetFooter([]string{"", "", "MISSING", fmt.Sprint(missing), "UNREADABLE", fmt.Sprint(unreadable)})

	table.Render()
	return buf.String()
}
