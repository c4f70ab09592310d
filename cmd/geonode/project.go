package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/geonode"
	"github.com/gogpu/geonode/export"
	"github.com/gogpu/geonode/project"
)

type projectFlags struct {
	in          string
	mode        string
	distance    []float64
	broadcast   string
	format, out string
}

func newProjectCmd(a *app) *cobra.Command {
	f := &projectFlags{}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Flatten 3D meshes to 2D with a perspective projection.",
		Long: `Flatten 3D meshes to 2D with a perspective projection.

Input is the JSON format written by "geonode cycloid --format json". Edges
and polygons are carried over unchanged. --distance accepts a list that is
broadcast against the meshes of the input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProject(cmd, a, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.in, "in", "i", "-", "input JSON file, - for stdin")
	fl.StringVarP(&f.mode, "mode", "m", "", "projection: planar, spherical or cylindrical")
	fl.Float64SliceVarP(&f.distance, "distance", "d", nil, "projection distance")
	fl.StringVar(&f.broadcast, "broadcast", "strict", "list matching: strict or repeat")
	fl.StringVarP(&f.format, "format", "f", "json", "output format: json, geojson, dxf, png")
	fl.StringVarP(&f.out, "out", "o", "-", "output file, - for stdout")
	return cmd
}

func runProject(cmd *cobra.Command, a *app, f *projectFlags) error {
	if err := checkFormat(f.format); err != nil {
		return err
	}
	pc := a.cfg.Projector
	if cmd.Flags().Changed("mode") {
		pc.Mode = f.mode
	}
	s, err := pc.Settings()
	if err != nil {
		return err
	}
	policy, err := geonode.ParseBroadcastPolicy(f.broadcast)
	if err != nil {
		return err
	}

	meshes, err := readMeshes(cmd, f.in)
	if err != nil {
		return err
	}
	distances := floatsOr(cmd, "distance", f.distance, s.Distance)

	results, err := project.ProjectAll(meshes, distances, []geonode.Matrix4{s.Screen}, s.Mode,
		project.WithBroadcast(policy),
		project.WithLimit(s.Limit))
	if err != nil {
		return err
	}

	flat := make([]geonode.Mesh, len(results))
	for i, r := range results {
		flat[i] = r.Mesh()
	}
	return writeMeshes(cmd, f.format, f.out, flat)
}

func readMeshes(cmd *cobra.Command, path string) ([]geonode.Mesh, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}
	return export.ReadJSON(r)
}
