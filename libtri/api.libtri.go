// Package libtri implements a half-edge triangle mesh and the edge-rotation
// "beautify" pass that rewrites a triangulation toward better-shaped, flatter
// triangles.
//
// Beautification is simple in principle: rotate each interior edge to the
// better of its two diagonal orientations until no rotation improves the
// mesh.  The catch is that edges can keep rotating forever between
// equivalent states, so each edge slot remembers the states it has already
// been rotated into and refuses to re-enter one.
package libtri

// ElemFlags are caller-defined mark bits carried on edges and faces.
type ElemFlags uint16

const (
	// FlagBeautified is the conventional mark for elements touched by
	// BeautifyFill.  Callers may use any bits they like.
	FlagBeautified ElemFlags = 1 << iota
)
