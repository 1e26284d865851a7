package dto

import "sort"

// missing devuelve, ordenados, los nombres marcados como ausentes.
func missing(fields map[string]bool) []string {
	var out []string
	for name, absent := range fields {
		if absent {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
