package cycloid

import (
	"fmt"

	"github.com/gogpu/geonode"
	"github.com/gogpu/geonode/internal/enum"
)

// Centering selects which body is the coordinate origin of the traced path.
type Centering uint8

const (
	// CenterP1 places the origin at body 1 and traces body 2.
	CenterP1 Centering = iota

	// CenterP2 places the origin at body 2 and traces body 1.
	CenterP2

	// CenterOrigin keeps the shared orbit center as the origin and traces
	// body 2 riding on the orbit of body 1.
	CenterOrigin
)

var centeringNames = enum.Table{
	"p1":     int(CenterP1),
	"p2":     int(CenterP2),
	"origin": int(CenterOrigin),
}

// String returns the centering name.
func (c Centering) String() string {
	switch c {
	case CenterP1:
		return "P1"
	case CenterP2:
		return "P2"
	case CenterOrigin:
		return "Origin"
	default:
		return fmt.Sprintf("Centering(%d)", c)
	}
}

// ParseCentering parses "P1", "P2" or "Origin", ignoring case.
func ParseCentering(s string) (Centering, error) {
	v, ok := centeringNames.Lookup(s)
	if !ok {
		return 0, fmt.Errorf("centering %q: %w", s, geonode.ErrUnknownEnum)
	}
	return Centering(v), nil
}
