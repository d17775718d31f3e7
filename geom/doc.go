// Package geom provides planes, triangles and axis-aligned boxes built on linalg vectors.
//
// Queries that have no answer for degenerate input, such as the barycentric
// coordinates of a point in a zero-area triangle, return an ok flag instead of a
// sentinel value.
package geom
