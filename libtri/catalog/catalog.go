// Package catalog persists named mesh snapshots in a badger database, so
// batch tooling can record beautified results and skip inputs it has already
// processed.
package catalog

import (
	"encoding/binary"
	"runtime"

	"github.com/dgraph-io/badger/v3"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"

	"github.com/trimesh-systems/gotri/gotri"
	"github.com/trimesh-systems/gotri/libtri"
)

/***

Catalog database format:

	gCatalogStateKey => catalogState (versions + snapshot count)

	kMeshKeyPrefix, name...  =>  MeshInfo header (3 uvarints), mesh encoding

An ordered in-memory index (name -> MeshInfo) is rebuilt from the keys at
open, so Select can walk snapshots in name order and filter on element
counts without touching values.

***/

var gCatalogStateKey = []byte{0x00, 0x00, 0x01}

const kMeshKeyPrefix = byte(0x02)

const (
	kCatalogMajorVers = 2024
	kCatalogMinorVers = 1
)

type catalogState struct {
	MajorVers uint32
	MinorVers uint32
	NumMeshes uint64
}

func (st *catalogState) Marshal() []byte {
	var scrap [binary.MaxVarintLen64]byte
	dst := make([]byte, 0, 16)
	for _, field := range [3]uint64{uint64(st.MajorVers), uint64(st.MinorVers), st.NumMeshes} {
		n := binary.PutUvarint(scrap[:], field)
		dst = append(dst, scrap[:n]...)
	}
	return dst
}

func (st *catalogState) Unmarshal(src []byte) error {
	var fields [3]uint64
	for i := range fields {
		v, n := binary.Uvarint(src)
		if n <= 0 {
			return gotri.ErrUnmarshal
		}
		fields[i] = v
		src = src[n:]
	}
	st.MajorVers = uint32(fields[0])
	st.MinorVers = uint32(fields[1])
	st.NumMeshes = fields[2]
	return nil
}

// catalog is a db wrapper for a mesh snapshot catalog.
type catalog struct {
	ctx        gotri.CatalogContext
	readOnly   bool
	stateDirty bool
	state      catalogState
	db         *badger.DB
	index      *redblacktree.Tree // name -> gotri.MeshInfo, rebuilt at open
}

// OpenCatalog opens a new or existing snapshot catalog and attaches it to
// the given context.
func OpenCatalog(ctx gotri.CatalogContext, opts gotri.CatalogOpts) (gotri.Catalog, error) {
	cat := &catalog{
		ctx:      ctx,
		readOnly: opts.ReadOnly,
		index:    redblacktree.NewWith(utils.StringComparator),
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // single writer, so skip the bookkeeping
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(gotri.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	// Once the db is open, the context blocks until the catalog closes
	ctx.AttachCatalog(cat)

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = true
		cat.state.MajorVers = kCatalogMajorVers
		cat.state.MinorVers = kCatalogMinorVers
	}
	if err == nil && (cat.state.MajorVers != kCatalogMajorVers || cat.state.MinorVers != kCatalogMinorVers) {
		err = errors.New("catalog version is incompatible")
	}
	if err == nil {
		err = cat.buildIndex()
	}
	if err != nil {
		cat.Close()
		return nil, err
	}
	return cat, nil
}

func (cat *catalog) loadState() error {
	return cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			err = item.Value(func(val []byte) error {
				return cat.state.Unmarshal(val)
			})
		}
		return err
	})
}

func (cat *catalog) flushState() {
	if !cat.stateDirty || cat.readOnly {
		return
	}
	err := cat.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gCatalogStateKey, cat.state.Marshal())
	})
	if err != nil {
		panic(err)
	}
	cat.stateDirty = false
}

func (cat *catalog) buildIndex() error {
	return cat.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   300,
			Prefix:         []byte{kMeshKeyPrefix},
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			name := string(item.Key()[1:])
			err := item.Value(func(val []byte) error {
				info, _, err := parseSnapshotValue(val)
				if err != nil {
					return err
				}
				cat.index.Put(name, info)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func meshKey(name string) []byte {
	key := make([]byte, 0, 1+len(name))
	key = append(key, kMeshKeyPrefix)
	return append(key, name...)
}

func appendSnapshotValue(dst []byte, info gotri.MeshInfo, encoding []byte) []byte {
	var scrap [binary.MaxVarintLen64]byte
	for _, field := range [3]uint32{info.NumVerts, info.NumEdges, info.NumFaces} {
		n := binary.PutUvarint(scrap[:], uint64(field))
		dst = append(dst, scrap[:n]...)
	}
	return append(dst, encoding...)
}

func parseSnapshotValue(val []byte) (gotri.MeshInfo, []byte, error) {
	var fields [3]uint64
	for i := range fields {
		v, n := binary.Uvarint(val)
		if n <= 0 {
			return gotri.MeshInfo{}, nil, gotri.ErrUnmarshal
		}
		fields[i] = v
		val = val[n:]
	}
	info := gotri.MeshInfo{
		NumVerts: uint32(fields[0]),
		NumEdges: uint32(fields[1]),
		NumFaces: uint32(fields[2]),
	}
	return info, val, nil
}

func (cat *catalog) TryAddMesh(name string, info gotri.MeshInfo, encoding []byte) bool {
	if cat.readOnly || len(name) == 0 {
		return false
	}
	key := meshKey(name)

	added := false
	err := cat.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return nil // already present
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		added = true
		return txn.Set(key, appendSnapshotValue(nil, info, encoding))
	})
	if err != nil {
		panic(err)
	}

	if added {
		cat.index.Put(name, info)
		cat.state.NumMeshes++
		cat.stateDirty = true
	}
	return added
}

func (cat *catalog) GetMesh(name string) ([]byte, error) {
	var encoding []byte
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(meshKey(name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			_, enc, err := parseSnapshotValue(val)
			if err == nil {
				encoding = append([]byte{}, enc...)
			}
			return err
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, gotri.ErrMeshNotFound
	}
	if err != nil {
		return nil, err
	}
	return encoding, nil
}

func (cat *catalog) NumMeshes() int64 {
	return int64(cat.state.NumMeshes)
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

// Select fires onHit with every snapshot matching the selector, in ascending
// name order.
//
// Warning: if onHit retains a snapshot's encoding, it must make a copy.
func (cat *catalog) Select(sel gotri.MeshSelector, onHit gotri.OnSnapshotHit) {
	it := cat.index.Iterator()
	for it.Next() {
		name := it.Key().(string)
		info := it.Value().(gotri.MeshInfo)
		if !sel.SelectsMesh(info) {
			continue
		}
		encoding, err := cat.GetMesh(name)
		if err != nil {
			continue // dropped out from under the index
		}
		onHit <- gotri.MeshSnapshot{
			Name:     name,
			Info:     info,
			Encoding: encoding,
		}
	}
}

func (cat *catalog) Close() error {
	cat.flushState()
	if cat.db != nil {
		cat.db.Close()
		cat.db = nil
		cat.ctx.DetachCatalog(cat)
		cat.ctx = nil
	}
	return nil
}

// AddMesh encodes m and adds it to cat under name.
func AddMesh(cat gotri.Catalog, name string, m *libtri.Mesh) bool {
	return cat.TryAddMesh(name, m.GetInfo(), m.AppendEncoding(nil))
}

// LoadMesh fetches and decodes the snapshot stored under name.
func LoadMesh(cat gotri.Catalog, name string) (*libtri.Mesh, error) {
	encoding, err := cat.GetMesh(name)
	if err != nil {
		return nil, err
	}
	return libtri.MeshFromEncoding(encoding)
}
