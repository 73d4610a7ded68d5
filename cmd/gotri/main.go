package main

import (
	"flag"
	"path/filepath"
	"strings"

	"github.com/plan-systems/klog"

	"github.com/trimesh-systems/gotri/gotri"
	"github.com/trimesh-systems/gotri/libtri"
	"github.com/trimesh-systems/gotri/libtri/catalog"
	"github.com/trimesh-systems/gotri/libtri/preview"
	"github.com/trimesh-systems/gotri/libtri/wavefront"
)

func main() {

	flag.Set("logtostderr", "true")
	flag.Set("v", "2")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	inPath := flag.String("in", "", "input OBJ mesh")
	outPath := flag.String("out", "", "output OBJ path (default: <in>.beauty.obj)")
	methodStr := flag.String("method", "angle", "rotation cost: angle | area")
	restrictTag := flag.Bool("restrict-tag", false, "only rotate edges whose opposite verts carry differing tags")
	restrictDegen := flag.Bool("restrict-degenerate", false, "reject rotations forming zero-area triangles (area method)")
	previewPath := flag.String("preview", "", "also write a PNG wireframe of the result (rotated edges in red)")
	catalogPath := flag.String("catalog", "", "record the result in the snapshot catalog at this dir")

	flag.Parse()

	if *inPath == "" {
		klog.Fatal("missing -in mesh.obj")
	}

	mesh, err := wavefront.ParseFile(*inPath)
	if err != nil {
		klog.Fatalf("loading %s: %v", *inPath, err)
	}

	method := gotri.MethodAngle
	if *methodStr == "area" {
		method = gotri.MethodArea
	}
	var flags gotri.BeautifyFlags
	if *restrictTag {
		flags |= gotri.VertRestrictTag
	}
	if *restrictDegen {
		flags |= gotri.EdgeRestrictDegenerate
	}

	edges := mesh.ManifoldEdges(nil)
	rotations := mesh.BeautifyFill(edges, flags, method, libtri.FlagBeautified, libtri.FlagBeautified)
	klog.Infof("%s: %d verts, %d faces, %d interior edges, %d rotations",
		*inPath, mesh.NumVerts(), mesh.NumFaces(), len(edges), rotations)

	out := *outPath
	if out == "" {
		out = strings.TrimSuffix(*inPath, filepath.Ext(*inPath)) + ".beauty.obj"
	}
	if err := wavefront.ExportFile(out, mesh); err != nil {
		klog.Fatalf("writing %s: %v", out, err)
	}
	klog.Infof("wrote %s", out)

	if *previewPath != "" {
		if err := preview.SavePNG(*previewPath, mesh, 1024, libtri.FlagBeautified); err != nil {
			klog.Errorf("writing preview %s: %v", *previewPath, err)
		}
	}

	if *catalogPath != "" {
		ctx := gotri.NewCatalogContext()
		cat, err := catalog.OpenCatalog(ctx, gotri.CatalogOpts{DbPathName: *catalogPath})
		if err != nil {
			klog.Fatalf("opening catalog %s: %v", *catalogPath, err)
		}
		name := filepath.Base(*inPath)
		if catalog.AddMesh(cat, name, mesh) {
			klog.Infof("cataloged %q (%d snapshots)", name, cat.NumMeshes())
		} else {
			klog.Infof("catalog already holds %q", name)
		}
		ctx.Close()
		<-ctx.Done()
	}

	klog.Flush()
}
