package client

import "strings"

// SplitList parses the comma-separated text the admin forms use to edit
// list fields on a single line. Segments are trimmed, empties dropped.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinList renders a list field back into its single-line editable form.
// JoinList and SplitList round-trip as long as no element contains a comma.
func JoinList(xs []string) string {
	return strings.Join(xs, ", ")
}
