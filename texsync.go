/*
Package texsync is a library for syncing the StorageHub textures from an
external source folder into the mod's asset tree.

Each Mapping in a Table renames one source texture to an item and/or tile
texture under the assets root, padding legacy tile sheets on the way.
*/
package texsync

import (
	"io"
	"log"
)

const (
	itemsDir     = "items"
	tilesDir     = "tiles"
	lockFilename = ".texsync.lock"
)

type Syncer struct {
	table  Table
	logger *log.Logger
}

// New returns a Syncer for the given table. Progress is written to logger,
// which may be nil to discard it.
func New(table Table, logger *log.Logger) *Syncer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Syncer{
		table:  table,
		logger: logger,
	}
}
