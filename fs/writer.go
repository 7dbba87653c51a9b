// Package fs provides JSON file persistence for extracted listings.
// Naming and directory-layout policy lives here, not in the extraction
// core: single listings are named after their id, batches go into
// timestamped directories.
package fs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/avolos/flatscan"
)

// DefaultOutputDir receives output when the caller gives no destination.
const DefaultOutputDir = "output"

// batchDirFormat names auto-generated batch directories.
const batchDirFormat = "2006-01-02_15-04-05"

// SaveListing writes one listing as pretty-printed JSON and returns the
// full path of the written file. An empty path means the default output
// directory; a directory path means a file named after the listing id;
// the .json extension is enforced. Writing is skipped when the target
// already holds identical content.
func SaveListing(apt *flatscan.Apartment, path string) (string, error) {
	if err := apt.Validate(); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(apt, "", "  ")
	if err != nil {
		return "", err
	}

	if path == "" {
		path = DefaultOutputDir
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, apt.ID)
	}
	if ext := filepath.Ext(path); ext != ".json" {
		path = path[:len(path)-len(ext)] + ".json"
	}

	if unchanged(path, data) {
		return path, nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", flatscan.Errorf(flatscan.EUNAVAILABLE, "write %s: %v", path, err)
	}
	return path, nil
}

// SaveBatch writes every listing of a batch into dir and returns the
// directory path. An empty dir becomes a timestamped directory under the
// default output directory. Per-item write failures are logged and
// skipped; an already-successful batch is not failed by one bad write.
func SaveBatch(apts []*flatscan.Apartment, dir string, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return "", flatscan.Errorf(flatscan.EINVALID, "destination %q is a file, need a directory", dir)
	}
	if dir == "" {
		dir = filepath.Join(DefaultOutputDir, time.Now().Format(batchDirFormat))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", flatscan.Errorf(flatscan.EUNAVAILABLE, "create output directory %s: %v", dir, err)
	}

	for _, apt := range apts {
		if _, err := SaveListing(apt, dir); err != nil {
			logger.Error("failed to save listing", "id", apt.ID, "error", err)
		}
	}
	return dir, nil
}

// unchanged reports whether the file at path already holds data.
// Compared by xxhash so identical re-runs don't touch mtimes.
func unchanged(path string, data []byte) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return xxhash.Sum64(existing) == xxhash.Sum64(data)
}

// Ensure Writer implements flatscan.ListingWriter at compile time.
var _ flatscan.ListingWriter = (*Writer)(nil)

// Writer persists listings into a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateListing writes one listing into the base directory.
func (w *Writer) CreateListing(ctx context.Context, apt *flatscan.Apartment) error {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}
	_, err := SaveListing(apt, w.baseDir)
	return err
}
