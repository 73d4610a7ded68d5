package wavefront

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/trimesh-systems/gotri/libtri"
)

// Export writes the mesh as OBJ text: verts in index order, faces in mesh
// order.  Output is deterministic for a given mesh, so exports of identical
// meshes compare byte-equal.
func Export(out io.Writer, m *libtri.Mesh) error {
	w := bufio.NewWriter(out)

	for _, v := range m.Verts() {
		fmt.Fprintf(w, "v %g %g %g\n", v.Co.X, v.Co.Y, v.Co.Z)
	}
	for _, f := range m.Faces() {
		verts := f.Verts()
		fmt.Fprintf(w, "f %d %d %d\n", verts[0].Index()+1, verts[1].Index()+1, verts[2].Index()+1)
	}
	return w.Flush()
}

// ExportFile writes the mesh as an OBJ file at path.
func ExportFile(path string, m *libtri.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	err = Export(f, m)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
