package libtri

import (
	"encoding/binary"
	"math"

	"github.com/trimesh-systems/gotri/gotri"
)

// Binary mesh encoding, used by the snapshot catalog:
//
//	version (byte)
//	NumVerts (uvarint), NumFaces (uvarint)
//	vert positions (NumVerts x 3 x float64 bits, little endian)
//	face vert indices (NumFaces x 3 x uvarint)
//
// Edges are implied by the faces, so wire edges do not survive a round trip.
const meshEncodingVers = 1

// AppendEncoding serializes this mesh onto dst and returns it.
func (m *Mesh) AppendEncoding(dst []byte) []byte {
	var scrap [binary.MaxVarintLen64]byte

	dst = append(dst, meshEncodingVers)
	n := binary.PutUvarint(scrap[:], uint64(len(m.verts)))
	dst = append(dst, scrap[:n]...)
	n = binary.PutUvarint(scrap[:], uint64(len(m.faces)))
	dst = append(dst, scrap[:n]...)

	for _, v := range m.verts {
		for _, f := range [3]float64{v.Co.X, v.Co.Y, v.Co.Z} {
			binary.LittleEndian.PutUint64(scrap[:8], math.Float64bits(f))
			dst = append(dst, scrap[:8]...)
		}
	}
	for _, f := range m.faces {
		for _, v := range f.Verts() {
			n = binary.PutUvarint(scrap[:], uint64(v.idx))
			dst = append(dst, scrap[:n]...)
		}
	}
	return dst
}

// InitFromEncoding resets this mesh and rebuilds it from an encoding
// produced by AppendEncoding.
func (m *Mesh) InitFromEncoding(src []byte) error {
	m.Init()

	if len(src) < 1 || src[0] != meshEncodingVers {
		return gotri.ErrBadEncoding
	}
	src = src[1:]

	numVerts, n := binary.Uvarint(src)
	if n <= 0 {
		return gotri.ErrBadEncoding
	}
	src = src[n:]
	numFaces, n := binary.Uvarint(src)
	if n <= 0 {
		return gotri.ErrBadEncoding
	}
	src = src[n:]

	// compare by division so an absurd count can't overflow the product
	if numVerts > uint64(len(src))/24 {
		return gotri.ErrBadEncoding
	}
	for i := uint64(0); i < numVerts; i++ {
		var co gotri.Vec3
		co.X = math.Float64frombits(binary.LittleEndian.Uint64(src[0:8]))
		co.Y = math.Float64frombits(binary.LittleEndian.Uint64(src[8:16]))
		co.Z = math.Float64frombits(binary.LittleEndian.Uint64(src[16:24]))
		src = src[24:]
		m.AddVert(co)
	}

	for i := uint64(0); i < numFaces; i++ {
		var refs [3]uint64
		for j := range refs {
			ref, n := binary.Uvarint(src)
			if n <= 0 {
				return gotri.ErrBadEncoding
			}
			if ref >= numVerts {
				return gotri.ErrBadVertRef
			}
			refs[j] = ref
			src = src[n:]
		}
		if _, err := m.AddFace(m.verts[refs[0]], m.verts[refs[1]], m.verts[refs[2]]); err != nil {
			return err
		}
	}
	if len(src) != 0 {
		return gotri.ErrBadEncoding
	}
	return nil
}

// MeshFromEncoding returns a fresh pooled mesh decoded from src.
func MeshFromEncoding(src []byte) (*Mesh, error) {
	m := NewMesh()
	if err := m.InitFromEncoding(src); err != nil {
		m.Reclaim()
		return nil, err
	}
	return m, nil
}
