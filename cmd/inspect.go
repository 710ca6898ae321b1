package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/achilleasa/objbuf/asset/wavefront"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Display statistics and the material table of one or more geometry files.
func Inspect(ctx *cli.Context) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}

	return parseArgs(ctx, cfg, func(doc *wavefront.Document) error {
		logger.Noticef("%s statistics\n%s", doc.Path, doc.Stats())

		if bbox, ok := doc.Bounds(); ok {
			logger.Noticef("%s bounds: min %v max %v", doc.Path, bbox[0], bbox[1])
		}

		if len(doc.Library.Materials) != 0 {
			logger.Noticef("%s materials\n%s", doc.Path, materialTable(doc))
		}
		return nil
	})
}

// Build a table listing each material and the meshes bound to it.
func materialTable(doc *wavefront.Document) string {
	meshCount := make([]int, len(doc.Library.Materials))
	for _, matIndex := range doc.MaterialIndices {
		if matIndex != wavefront.NoMaterial {
			meshCount[matIndex]++
		}
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Material", "Diffuse", "Ns", "d", "Illum", "Maps", "Meshes"})
	for matIndex := range doc.Library.Materials {
		mat := &doc.Library.Materials[matIndex]

		maps := make([]string, 0)
		for _, texMap := range mat.Maps() {
			maps = append(maps, texMap.Slot.String())
		}

		table.Append([]string{
			fmt.Sprint(matIndex),
			mat.Name,
			fmt.Sprintf("%.3f %.3f %.3f", mat.Diffuse[0], mat.Diffuse[1], mat.Diffuse[2]),
			fmt.Sprintf("%.1f", mat.Shininess),
			fmt.Sprintf("%.2f", mat.Transparency),
			fmt.Sprint(mat.Illum),
			strings.Join(maps, ","),
			fmt.Sprint(meshCount[matIndex]),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "TOTAL", fmt.Sprint(len(doc.Library.Materials))})

	table.Render()
	return buf.String()
}
