package main

import (
	"io"
	"os"
	"path"

	"github.com/bodgit/texsync"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func target(dir string, t texsync.Target) string {
	if !t.Valid {
		return t.String()
	}
	return path.Join(dir, t.Name)
}

func renderMappings(t texsync.Table, fancy bool) string {
	tw := table.NewWriter()
	if fancy {
		tw.SetStyle(table.StyleRounded)
	}

	tw.AppendHeader(table.Row{"Source", "Item", "Tile", "Pad"})
	for _, m := range t.Mappings() {
		pad := "no"
		if m.Tile.Valid && m.Pad {
			pad = "2x2"
		}
		tw.AppendRow(table.Row{m.Source, target("items", m.Item), target("tiles", m.Tile), pad})
	}

	return tw.Render()
}
