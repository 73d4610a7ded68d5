package gotri_test

import (
	"testing"
	"time"

	"github.com/trimesh-systems/gotri/gotri"
)

func TestCatalogContextClose(t *testing.T) {
	ctx := gotri.NewCatalogContext()
	ctx.Close()
	ctx.Close() // closing twice must be harmless

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context never finished closing")
	}
}
