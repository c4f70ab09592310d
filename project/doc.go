// Package project flattens 3D vertices to 2D with a perspective projection.
//
// A projection screen is given as a [geonode.Matrix4]: its translation is the
// screen origin, its first two columns span the screen and its third column
// is the screen normal. Three surfaces are supported, see [Mode].
//
// Every input vertex yields exactly one output vertex. Points that fall on
// the eye, the sphere center or the cylinder axis are resolved by a fixed
// fallback instead of dividing by zero, and every coordinate is clamped to
// [-Limit, Limit], so no NaN or infinity reaches the output.
package project
