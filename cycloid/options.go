package cycloid

import "github.com/gogpu/geonode"

// Option configures a generator call.
//
// Example:
//
//	// Only vertices, lists of mismatched length repeat their last value
//	meshes, err := cycloid.GenerateAll(in,
//		cycloid.WithOutputs(geonode.OutputVerts),
//		cycloid.WithBroadcast(geonode.BroadcastRepeatLast))
type Option func(*options)

type options struct {
	outputs   geonode.Outputs
	broadcast geonode.BroadcastPolicy
}

func defaultOptions() options {
	return options{
		outputs:   geonode.AllOutputs,
		broadcast: geonode.BroadcastStrict,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOutputs limits the lists a call computes. Lists that are not
// requested are returned as nil.
func WithOutputs(out geonode.Outputs) Option {
	return func(o *options) {
		o.outputs = out
	}
}

// WithBroadcast sets how vectorized inputs of different lengths are matched.
// The default is [geonode.BroadcastStrict].
func WithBroadcast(p geonode.BroadcastPolicy) Option {
	return func(o *options) {
		o.broadcast = p
	}
}
