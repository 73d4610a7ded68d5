package gotri

// Method selects the cost function used to score an edge rotation.
type Method int16

const (
	// MethodArea compares the area / perimeter ratios of the quad's two
	// possible triangulations (fatter triangles win).
	MethodArea Method = 0

	// MethodAngle compares the angle between the triangle pair's normals
	// before and after rotation (flatter wins).  Any non-zero Method value
	// selects this.
	MethodAngle Method = 1
)

// BeautifyFlags restrict which rotations the beautifier may perform.
type BeautifyFlags uint16

const (
	// VertRestrictTag suppresses rotating an edge whose two opposite
	// vertices carry the same tag, confining rotations to the interface
	// between tagged and untagged regions.
	VertRestrictTag BeautifyFlags = 1 << iota

	// EdgeRestrictDegenerate rejects rotations that would create a
	// zero-area triangle (honored by MethodArea).
	EdgeRestrictDegenerate
)

// MeshInfo summarizes the element counts of a mesh.
type MeshInfo struct {
	NumVerts uint32
	NumEdges uint32
	NumFaces uint32
}

// MeshSnapshot is one catalog entry: a named, serialized mesh.
type MeshSnapshot struct {
	Name     string
	Info     MeshInfo
	Encoding []byte
}

// OnSnapshotHit is a callback channel used to return snapshots meeting a set
// of selection criteria.
type OnSnapshotHit chan<- MeshSnapshot

// CatalogOpts specifies params for opening a mesh snapshot catalog.
type CatalogOpts struct {
	DbPathName string // omit for an in-memory db
	ReadOnly   bool   // open in read-only mode
}

// Catalog wraps a database of named mesh snapshots.
type Catalog interface {

	// Tries to add the given mesh encoding to this catalog under name.
	// If true is returned, no snapshot with that name existed and it was added.
	TryAddMesh(name string, info MeshInfo, encoding []byte) bool

	// GetMesh returns the encoding stored under name, or ErrMeshNotFound.
	GetMesh(name string) ([]byte, error)

	// NumMeshes returns the number of snapshots in this catalog.
	NumMeshes() int64

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// Select fires the given callback with each snapshot that meets the
	// selection criteria, in ascending name order.
	Select(sel MeshSelector, onHit OnSnapshotHit)

	// Closes this catalog.
	Close() error
}

// CatalogContext is a container for open / active Catalog instances.
type CatalogContext interface {

	// Attaches the given Catalog to this context.
	AttachCatalog(cat Catalog)

	// Detaches the given Catalog from this context.
	DetachCatalog(cat Catalog)

	// Signals all open catalogs to be closed then closes.
	Close()

	// Signals when Close() completed and all open Catalogs have been closed.
	Done() <-chan struct{}
}

// MeshSelector is an operator that either selects a given snapshot or not.
type MeshSelector struct {
	Min MeshInfo // lower select bounds
	Max MeshInfo // upper select bounds
}

// DefaultMeshSelector selects every snapshot.
var DefaultMeshSelector = MeshSelector{
	Max: MeshInfo{
		NumVerts: ^uint32(0),
		NumEdges: ^uint32(0),
		NumFaces: ^uint32(0),
	},
}

// SelectsMesh is a convenience function used to see if a snapshot is selected
// according to a MeshSelector.
func (sel *MeshSelector) SelectsMesh(info MeshInfo) bool {
	if info.NumVerts < sel.Min.NumVerts || info.NumEdges < sel.Min.NumEdges || info.NumFaces < sel.Min.NumFaces {
		return false
	}
	if info.NumVerts > sel.Max.NumVerts || info.NumEdges > sel.Max.NumEdges || info.NumFaces > sel.Max.NumFaces {
		return false
	}
	return true
}
