package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/surajmeruva0786/DigiGov10/internal/model"
	"github.com/surajmeruva0786/DigiGov10/internal/stats"
)

func TestCountEmpty(t *testing.T) {
	assert.Equal(t, model.Counts{}, stats.Count(nil))
}

func TestCountPerStatus(t *testing.T) {
	complaints := []model.Complaint{
		{ID: "#10001", Status: model.StatusPending},
		{ID: "#10002", Status: model.StatusPending},
		{ID: "#10003", Status: model.StatusInProgress},
		{ID: "#10004", Status: model.StatusResolved},
	}
	counts := stats.Count(complaints)
	assert.Equal(t, model.Counts{Total: 4, Pending: 2, InProgress: 1, Resolved: 1}, counts)
	assert.Equal(t, counts.Total, counts.Pending+counts.InProgress+counts.Resolved)
}
