package texsync

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidMapping is returned by NewTable for a record that can never
// produce a usable output.
var ErrInvalidMapping = errors.New("invalid mapping")

// Target is an optional destination filename. The zero value means no
// output of that kind is produced.
type Target struct {
	Name  string
	Valid bool
}

// To returns a Target for the given filename.
func To(name string) Target {
	return Target{Name: name, Valid: true}
}

func (t Target) String() string {
	if !t.Valid {
		return "-"
	}
	return t.Name
}

// Mapping names one source texture and where it ends up under the assets
// root. Pad is only consulted when Tile is set.
type Mapping struct {
	Source string
	Item   Target
	Tile   Target
	Pad    bool
}

// Table is an ordered, read-only list of mappings.
type Table struct {
	mappings []Mapping
}

// NewTable validates the mappings and returns them as a Table. Every mapping
// needs a source and at least one target, and every name must be a bare
// filename.
func NewTable(mappings ...Mapping) (Table, error) {
	for i, m := range mappings {
		if err := m.validate(); err != nil {
			return Table{}, fmt.Errorf("%w: mapping %d: %v", ErrInvalidMapping, i, err)
		}
	}
	return Table{
		mappings: append([]Mapping(nil), mappings...),
	}, nil
}

func mustTable(mappings ...Mapping) Table {
	t, err := NewTable(mappings...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of mappings in the table
func (t Table) Len() int {
	return len(t.mappings)
}

// Mappings returns a copy of the mappings in table order
func (t Table) Mappings() []Mapping {
	return append([]Mapping(nil), t.mappings...)
}

func (m Mapping) validate() error {
	if err := checkName(m.Source); err != nil {
		return fmt.Errorf("source: %v", err)
	}
	if !m.Item.Valid && !m.Tile.Valid {
		return fmt.Errorf("%q has no item or tile target", m.Source)
	}
	if m.Item.Valid {
		if err := checkName(m.Item.Name); err != nil {
			return fmt.Errorf("item target: %v", err)
		}
	}
	if m.Tile.Valid {
		if err := checkName(m.Tile.Name); err != nil {
			return fmt.Errorf("tile target: %v", err)
		}
	}
	return nil
}

func checkName(name string) error {
	switch {
	case name == "":
		return errors.New("empty filename")
	case name == "." || name == "..":
		return fmt.Errorf("%q is not a filename", name)
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name:
		return fmt.Errorf("%q is not a bare filename", name)
	}
	return nil
}

// DefaultTable is the StorageHub texture naming map. The tile sheets of the
// placeable blocks are legacy 32x32 sheets and need padding.
var DefaultTable = mustTable(
	Mapping{
		Source: "storage-core.png",
		Item:   To("storage-heart.png"),
		Tile:   To("storage-heart.png"),
		Pad:    true,
	},
	Mapping{
		Source: "storage-drive.png",
		Item:   To("storage-unit.png"),
		Tile:   To("storage-unit.png"),
		Pad:    true,
	},
	Mapping{
		Source: "storage-disk-tier-1.png",
		Item:   To("storage-disk.png"),
	},
	Mapping{
		Source: "disk-upgrader.png",
		Item:   To("disk-upgrader.png"),
		Tile:   To("disk-upgrader.png"),
		Pad:    true,
	},
)
