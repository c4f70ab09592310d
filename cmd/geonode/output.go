package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/geonode"
	"github.com/gogpu/geonode/export"
)

// writeMeshes writes meshes in format to out, or to stdout when out is "-".
func writeMeshes(cmd *cobra.Command, format, out string, meshes []geonode.Mesh) error {
	if format == "dxf" {
		if out == "-" {
			return errors.New("dxf output needs a file, use --out")
		}
		return export.WriteDXF(out, meshes)
	}

	if out == "-" {
		return encode(cmd.OutOrStdout(), format, meshes)
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := encode(file, format, meshes); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	geonode.Logger().Info("geonode: wrote output", "format", format, "out", out, "meshes", len(meshes))
	return nil
}

func encode(w io.Writer, format string, meshes []geonode.Mesh) error {
	switch format {
	case "geojson":
		data, err := export.GeoJSON(meshes).MarshalJSON()
		if err != nil {
			return fmt.Errorf("encode geojson: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case "png":
		opt := export.DefaultPreviewOptions()
		opt.Caption = export.Caption(meshes)
		return export.RenderPNG(w, meshes, opt)
	default:
		return export.WriteJSON(w, meshes)
	}
}
