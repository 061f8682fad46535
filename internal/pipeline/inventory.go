package pipeline

import (
	"fmt"
	"sort"

	"github.com/backmassage/pngjpg/internal/display"
	"github.com/backmassage/pngjpg/internal/logging"
	"github.com/backmassage/pngjpg/internal/probe"
)

// InventoryRow is one PNG as seen by a header-only probe. Err is set when the
// header could not be read; such files will fail conversion.
type InventoryRow struct {
	Info probe.Info
	Err  error
}

// Inventory probes the header of every image without decoding pixel data.
func Inventory(images []string) []InventoryRow {
	rows := make([]InventoryRow, 0, len(images))
	for _, path := range images {
		info, err := probe.Inspect(path)
		if err != nil {
			info = probe.Info{Path: path}
		}
		rows = append(rows, InventoryRow{Info: info, Err: err})
	}
	return rows
}

// printInventory renders the dry-run preview table followed by a count of
// images per color mode.
func printInventory(log *logging.Logger, root string, rows []InventoryRow) {
	log.Stage("Inventory")

	var total int64
	modes := make(map[probe.ColorMode]int)
	var flatten, unreadable int
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		if r.Err != nil {
			unreadable++
			table = append(table, []string{relPath(root, r.Info.Path), "-", "unreadable", "-"})
			continue
		}
		total += r.Info.Size
		modes[r.Info.Mode]++
		if r.Info.Mode.NeedsFlatten() {
			flatten++
		}
		table = append(table, []string{
			relPath(root, r.Info.Path),
			r.Info.Resolution(),
			string(r.Info.Mode),
			display.FormatBytes(r.Info.Size),
		})
	}

	fmt.Fprint(log.Writer(), display.RenderTable([]display.Column{
		{Header: "File"},
		{Header: "Resolution", Align: display.AlignRight},
		{Header: "Mode"},
		{Header: "Size", Align: display.AlignRight},
	}, table))
	fmt.Fprintln(log.Writer())

	names := make([]string, 0, len(modes))
	for m := range modes {
		names = append(names, string(m))
	}
	sort.Strings(names)
	for _, m := range names {
		log.Info("  %-7s %d", m, modes[probe.ColorMode(m)])
	}
	log.Info("Total PNG size: %s", display.FormatBytes(total))
	if flatten > 0 {
		log.Info("%s will be flattened onto the background", display.Plural(flatten, "image"))
	}
	if unreadable > 0 {
		log.Warn("%s could not be read and will fail to convert", display.Plural(unreadable, "image"))
	}
	log.Blank()
}
