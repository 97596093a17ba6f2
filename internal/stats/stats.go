// Package stats derives the official-dashboard aggregates. Counts are
// recomputed from the full collection on every query rather than maintained
// incrementally, so they can never drift from the complaint records.
package stats

import "github.com/surajmeruva0786/DigiGov10/internal/model"

// Count returns per-status cardinalities over complaints. O(n).
func Count(complaints []model.Complaint) model.Counts {
	c := model.Counts{Total: len(complaints)}
	for _, item := range complaints {
		switch item.Status {
		case model.StatusPending:
			c.Pending++
		case model.StatusInProgress:
			c.InProgress++
		case model.StatusResolved:
			c.Resolved++
		}
	}
	return c
}
