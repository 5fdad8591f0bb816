package ui

import (
	"fmt"
	"strings"

	"catalog-cli/internal/model"
)

// RenderList projects the store contents into the list view: a header
// with the item count, an optional persistent diagnostic (seed load
// trouble), then one summary line per item in display order. Pure;
// the items slice is never touched.
func RenderList(items []model.Item, diag string) string {
	t := Current()

	header := fmt.Sprintf("%s  %s %d",
		C(t.Title, "Catalog"),
		C(t.Accent, "items"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	if diag != "" {
		lines = append(lines, C(t.Warn, "! "+Sanitize(diag)))
	}
	lines = append(lines, "")

	if len(items) == 0 {
		lines = append(lines, C(t.Muted, "(no items)"))
	}
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			C(t.Muted, fmt.Sprintf("%3d", it.ID)),
			t.Bullet,
			oneLine(it.Name),
			C(t.Muted, "— "+oneLine(it.Description)),
		))
	}
	return PanelString(lines)
}

// oneLine flattens sanitized text for the single-line list entries.
func oneLine(s string) string {
	return strings.ReplaceAll(Sanitize(s), "\n", " ")
}

// RenderDetail projects a single item into the detail view.
func RenderDetail(it model.Item) string {
	t := Current()
	lines := []string{
		C(t.Title, oneLine(it.Name)),
		C(t.Muted, fmt.Sprintf("id %d", it.ID)),
		"",
	}
	for _, ln := range strings.Split(Sanitize(it.Description), "\n") {
		lines = append(lines, ln)
	}
	return PanelString(lines)
}
