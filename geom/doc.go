// Package geom provides the small vector and point types used by the
// canvas and the example programs.
//
// Vec2 is a float64 vector for continuous positions and velocities;
// Point is an integer cell or pixel coordinate.
package geom
