// Package search holds the in-memory filter predicates applied to complaint
// and scheme collections. Filters are stable: result order is the source
// order, no re-sort.
package search

import (
	"strings"

	"github.com/surajmeruva0786/DigiGov10/internal/model"
)

// All is the pass-all category/status filter value.
const All = "all"

// Complaints returns the complaints matching status. An empty or "all"
// status is no filter.
func Complaints(items []model.Complaint, status string) []model.Complaint {
	if status == "" || status == All {
		return items
	}
	out := make([]model.Complaint, 0, len(items))
	for _, c := range items {
		if string(c.Status) == status {
			out = append(out, c)
		}
	}
	return out
}

// Schemes returns schemes whose category matches (or category is "all"/empty)
// AND whose localized name or description in lang contains term,
// case-insensitively. An empty term matches everything.
func Schemes(items []model.Scheme, category, term, lang string) []model.Scheme {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]model.Scheme, 0, len(items))
	for _, s := range items {
		if category != "" && category != All && s.Category != category {
			continue
		}
		if term != "" {
			name := strings.ToLower(s.Name.In(lang))
			desc := strings.ToLower(s.Description.In(lang))
			if !strings.Contains(name, term) && !strings.Contains(desc, term) {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}
