package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/geonode/cycloid"
)

type cycloidFlags struct {
	r1, r2, t1, t2, o1, o2, time []float64
	n                            []int
	start                        float64
	centering                    string
	closed                       bool
	broadcast                    string
	raw                          bool
	format, out                  string
}

func newCycloidCmd(a *app) *cobra.Command {
	f := &cycloidFlags{}
	cmd := &cobra.Command{
		Use:   "cycloid",
		Short: "Trace the path of one orbiting body relative to another.",
		Long: `Trace the path of one orbiting body relative to another.

Every numeric parameter accepts a comma-separated list; lists are broadcast
row by row and each row produces one path. Unset parameters come from the
cycloid section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCycloid(cmd, a, f)
		},
	}

	fl := cmd.Flags()
	fl.Float64SliceVar(&f.r1, "r1", nil, "orbit radius of body 1")
	fl.Float64SliceVar(&f.r2, "r2", nil, "orbit radius of body 2")
	fl.Float64SliceVar(&f.t1, "t1", nil, "orbit period of body 1")
	fl.Float64SliceVar(&f.t2, "t2", nil, "orbit period of body 2")
	fl.Float64SliceVar(&f.o1, "o1", nil, "phase offset of body 1, in [0, 1]")
	fl.Float64SliceVar(&f.o2, "o2", nil, "phase offset of body 2, in [0, 1]")
	fl.Float64SliceVar(&f.time, "time", nil, "length of the sampled time window")
	fl.IntSliceVar(&f.n, "n", nil, "number of vertices per path")
	fl.Float64Var(&f.start, "start", 0, "start of the time window")
	fl.StringVar(&f.centering, "centering", "", "origin of the path: P1, P2 or Origin")
	fl.BoolVar(&f.closed, "closed", false, "join the last vertex back to the first")
	fl.StringVar(&f.broadcast, "broadcast", "", "list matching: strict or repeat")
	fl.BoolVar(&f.raw, "raw", false, "skip input sanitization")
	fl.StringVarP(&f.format, "format", "f", "json", "output format: json, geojson, dxf, png")
	fl.StringVarP(&f.out, "out", "o", "-", "output file, - for stdout")
	return cmd
}

func runCycloid(cmd *cobra.Command, a *app, f *cycloidFlags) error {
	if err := checkFormat(f.format); err != nil {
		return err
	}
	in, err := f.inputs(cmd, a)
	if err != nil {
		return err
	}
	c := a.cfg.Cycloid
	if cmd.Flags().Changed("broadcast") {
		c.Broadcast = f.broadcast
	}
	policy, err := c.BroadcastPolicy()
	if err != nil {
		return err
	}
	if !f.raw {
		in = in.Sanitize()
	}

	meshes, err := cycloid.GenerateAll(in, cycloid.WithBroadcast(policy))
	if err != nil {
		return err
	}
	return writeMeshes(cmd, f.format, f.out, meshes)
}

// inputs merges flags over the configured defaults.
func (f *cycloidFlags) inputs(cmd *cobra.Command, a *app) (cycloid.Inputs, error) {
	c := a.cfg.Cycloid
	if cmd.Flags().Changed("centering") {
		c.Centering = f.centering
	}
	if cmd.Flags().Changed("closed") {
		c.Closed = f.closed
	}
	if cmd.Flags().Changed("start") {
		c.Start = f.start
	}
	p, err := c.Params()
	if err != nil {
		return cycloid.Inputs{}, err
	}

	in := cycloid.InputsFrom(p)
	in.Radius1 = floatsOr(cmd, "r1", f.r1, p.Radius1)
	in.Radius2 = floatsOr(cmd, "r2", f.r2, p.Radius2)
	in.Period1 = floatsOr(cmd, "t1", f.t1, p.Period1)
	in.Period2 = floatsOr(cmd, "t2", f.t2, p.Period2)
	in.Offset1 = floatsOr(cmd, "o1", f.o1, p.Offset1)
	in.Offset2 = floatsOr(cmd, "o2", f.o2, p.Offset2)
	in.Time = floatsOr(cmd, "time", f.time, p.Time)
	if cmd.Flags().Changed("n") {
		in.Resolution = f.n
	}
	return in, nil
}
