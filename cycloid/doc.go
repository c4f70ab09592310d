// Package cycloid traces the path of one orbiting body as seen from another.
//
// Two bodies P1 and P2 circle a shared center with their own radius, period
// and phase offset. Sampling the relative position of the bodies over a time
// window yields epicycle, hypocycle and rosette curves:
//
//	p := cycloid.DefaultParams()
//	p.Radius2 = 4
//	mesh, err := cycloid.Generate(p)
//
// The generator trusts its inputs. Raw values from a host or a config file
// go through [Inputs.Sanitize] first.
package cycloid
