package project

import (
	"fmt"

	"github.com/gogpu/geonode"
	"github.com/gogpu/geonode/internal/enum"
)

// Mode selects the projection surface.
type Mode uint8

const (
	// Planar is a pinhole projection onto the screen plane, with the eye at
	// Distance behind the screen along its normal.
	Planar Mode = iota

	// Spherical projects onto a sphere of radius Distance around the screen
	// origin and unwraps it equirectangularly.
	Spherical

	// Cylindrical projects onto a cylinder of radius Distance around the
	// screen normal and unrolls it.
	Cylindrical
)

var modeNames = enum.Table{
	"planar":      int(Planar),
	"plane":       int(Planar),
	"spherical":   int(Spherical),
	"sphere":      int(Spherical),
	"cylindrical": int(Cylindrical),
	"cylinder":    int(Cylindrical),
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Planar:
		return "planar"
	case Spherical:
		return "spherical"
	case Cylindrical:
		return "cylindrical"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ParseMode parses a mode name. Both "planar" and "PLANE" style names are
// accepted, ignoring case.
func ParseMode(s string) (Mode, error) {
	v, ok := modeNames.Lookup(s)
	if !ok {
		return 0, fmt.Errorf("projection mode %q: %w", s, geonode.ErrUnknownEnum)
	}
	return Mode(v), nil
}
