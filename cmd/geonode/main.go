// Command geonode evaluates geometry nodes and writes their output.
//
// Usage:
//
//	geonode cycloid --r2 1,2,3 --format png --out rosettes.png
//	geonode cycloid --format json --out path.json
//	geonode project --in path.json --mode sphere --distance 4 --format geojson
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
