package metaflac

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
)

func createTestFiles(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, n)
	for i := range paths {
		paths[i] = writeTemp(t, dir, fmt.Sprintf("track%02d.flac", i), taggedStream(fmt.Sprintf("TRACKNUMBER=%d", i)))
	}
	return paths
}

func TestOpenMany(t *testing.T) {
	paths := createTestFiles(t, 8)

	docs, err := OpenMany(context.Background(), paths)
	if err != nil {
		t.Fatalf("OpenMany failed: %v", err)
	}
	if len(docs) != len(paths) {
		t.Fatalf("got %d documents, want %d", len(docs), len(paths))
	}

	// Results keep input order.
	for i, doc := range docs {
		if doc.Path != paths[i] {
			t.Errorf("docs[%d].Path = %q, want %q", i, doc.Path, paths[i])
		}
		got, _ := doc.Tag("TRACKNUMBER")
		if len(got) != 1 || got[0] != fmt.Sprintf("TRACKNUMBER=%d", i) {
			t.Errorf("docs[%d] TRACKNUMBER = %q", i, got)
		}
	}
}

func TestOpenMany_Empty(t *testing.T) {
	docs, err := OpenMany(context.Background(), nil)
	if err != nil || docs != nil {
		t.Errorf("OpenMany(nil) = %v, %v", docs, err)
	}
}

// TestOpenMany_Cancellation verifies that a cancelled context opens nothing.
func TestOpenMany_Cancellation(t *testing.T) {
	paths := createTestFiles(t, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs, err := OpenMany(ctx, paths)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if docs != nil {
		t.Error("expected nil documents on error")
	}
}

// TestOpenMany_PartialFailure verifies all-or-nothing results.
func TestOpenMany_PartialFailure(t *testing.T) {
	paths := createTestFiles(t, 2)
	paths = append(paths, filepath.Join(t.TempDir(), "missing.flac"))

	docs, err := OpenMany(context.Background(), paths)
	if err == nil {
		t.Fatal("expected error from nonexistent file")
	}
	if docs != nil {
		t.Error("expected nil documents on partial failure")
	}
}

func TestOpenMany_Options(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "odd.flac", newStream().
		block(BlockTypeStreamInfo, false, testStreamInfo().Encode()).
		block(BlockType(100), true, nil).
		bytes())

	if _, err := OpenMany(context.Background(), []string{path}); err != nil {
		t.Fatalf("lenient OpenMany failed: %v", err)
	}
	if _, err := OpenMany(context.Background(), []string{path}, WithStrictParsing()); err == nil {
		t.Fatal("expected strict OpenMany to fail")
	}
}

func TestOpenContext_Cancelled(t *testing.T) {
	paths := createTestFiles(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := OpenContext(ctx, paths[0]); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
