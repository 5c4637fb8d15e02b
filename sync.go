package texsync

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/bodgit/texsync/raster"
	"github.com/bodgit/texsync/tile"
	"github.com/gofrs/flock"
)

var (
	// ErrSourceDirMissing is returned when the source directory does not
	// exist or is not a directory. Nothing is written.
	ErrSourceDirMissing = errors.New("source directory does not exist")

	// ErrSourceFileMissing marks a mapping whose source texture is absent.
	// Such mappings are skipped and listed in Report.Missing rather than
	// returned.
	ErrSourceFileMissing = errors.New("source file does not exist")

	// ErrLocked is returned when another sync holds the assets root.
	ErrLocked = errors.New("assets root is locked by another sync")
)

// Report tallies the outcome of a sync.
type Report struct {
	// Copied counts every item and tile texture written
	Copied int
	// Skipped counts mappings whose source was missing
	Skipped int
	// Missing holds the path of each missing source, wrapping
	// ErrSourceFileMissing
	Missing []error
}

// Sync processes every mapping in table order, reading sources from
// sourceDir and writing to the items and tiles directories under assetsRoot,
// which are created if needed. A missing source is skipped; any other failure
// stops the sync and is returned along with the report so far.
func (s *Syncer) Sync(ctx context.Context, sourceDir, assetsRoot string) (Report, error) {
	var report Report

	src, err := filepath.Abs(sourceDir)
	if err != nil {
		return report, err
	}
	root, err := filepath.Abs(assetsRoot)
	if err != nil {
		return report, err
	}

	info, err := os.Stat(src)
	switch {
	case os.IsNotExist(err):
		return report, fmt.Errorf("%w: %s", ErrSourceDirMissing, src)
	case err != nil:
		return report, err
	case !info.IsDir():
		return report, fmt.Errorf("%w: %s is not a directory", ErrSourceDirMissing, src)
	}

	items, tiles := filepath.Join(root, itemsDir), filepath.Join(root, tilesDir)
	for _, dir := range []string{items, tiles} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return report, err
		}
	}

	unlock, err := lockRoot(root)
	if err != nil {
		return report, err
	}
	defer unlock()

	for _, m := range s.table.mappings {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		file := filepath.Join(src, m.Source)
		if _, err := os.Stat(file); err != nil {
			if !os.IsNotExist(err) {
				return report, err
			}
			s.logger.Printf("SKIP  missing source: %s\n", file)
			report.Skipped++
			report.Missing = append(report.Missing, fmt.Errorf("%w: %s", ErrSourceFileMissing, file))
			continue
		}

		n, err := s.syncMapping(m, file, items, tiles)
		report.Copied += n
		if err != nil {
			return report, err
		}
	}

	s.logger.Printf("Done. Copied %d outputs, skipped %d missing sources.\n", report.Copied, report.Skipped)

	return report, nil
}

// syncMapping writes the outputs for a single mapping and returns how many
// were written. The tile is prepared before anything is written so a sheet
// of the wrong size leaves no outputs for the mapping.
func (s *Syncer) syncMapping(m Mapping, file, items, tiles string) (int, error) {
	img, err := raster.Load(file)
	if err != nil {
		return 0, err
	}

	var sheet image.Image = img
	if m.Tile.Valid && m.Pad {
		if sheet, err = tile.Pad(img); err != nil {
			return 0, fmt.Errorf("%s: %w", m.Source, err)
		}
	}

	var n int

	if m.Item.Valid {
		dst := filepath.Join(items, m.Item.Name)
		if err := raster.Save(dst, img); err != nil {
			return n, err
		}
		s.logger.Printf("ITEM  %s -> %s\n", m.Source, dst)
		n++
	}

	if m.Tile.Valid {
		dst := filepath.Join(tiles, m.Tile.Name)
		if err := raster.Save(dst, sheet); err != nil {
			return n, err
		}
		b := sheet.Bounds()
		s.logger.Printf("TILE  %s -> %s size=%dx%d\n", m.Source, dst, b.Dx(), b.Dy())
		n++
	}

	return n, nil
}

func lockRoot(root string) (func(), error) {
	file := filepath.Join(root, lockFilename)
	lock := flock.New(file)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, file)
	}

	// The lock file is left in place, removing it would let two syncs
	// lock different inodes at the same path
	return func() {
		_ = lock.Unlock()
	}, nil
}
