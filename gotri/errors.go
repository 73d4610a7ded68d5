package gotri

import "errors"

// Errors
var (
	ErrUnmarshal       = errors.New("unmarshal failed")
	ErrBadCatalogParam = errors.New("bad catalog param")
	ErrBadEncoding     = errors.New("bad mesh encoding")
	ErrBadVertRef      = errors.New("bad vertex reference")
	ErrVertsExpected   = errors.New("face needs at least 3 vertex references")
	ErrDegenerateFace  = errors.New("face uses a vertex more than once")
	ErrMeshNotFound    = errors.New("mesh not found in catalog")
)
