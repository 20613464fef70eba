package export

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"ecommerce-dashboard/utils"
)

// Needs a local Chrome; run with SNAPSHOT_TEST=1.
func TestSnapshotterCapture(t *testing.T) {
	if os.Getenv("SNAPSHOT_TEST") == "" {
		t.Skip("set SNAPSHOT_TEST=1 to run against a local browser")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><h1>E-Commerce Public Dashboard</h1></body></html>")
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snap, err := NewSnapshotter("", 1, utils.NewDiscardLogger()).Capture(ctx, srv.URL)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if !bytes.HasPrefix(snap.PNG, []byte("\x89PNG")) {
		t.Error("screenshot is not a PNG")
	}
	if !bytes.HasPrefix(snap.PDF, []byte("%PDF")) {
		t.Error("print is not a PDF")
	}

	pngPath, pdfPath, err := SaveSnapshot(t.TempDir(), snap)
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	for _, p := range []string{pngPath, pdfPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("stat %s: %v", p, err)
		}
	}
}
