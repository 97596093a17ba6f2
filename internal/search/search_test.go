package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surajmeruva0786/DigiGov10/internal/model"
	"github.com/surajmeruva0786/DigiGov10/internal/search"
)

var complaints = []model.Complaint{
	{ID: "#10001", Status: model.StatusPending},
	{ID: "#10002", Status: model.StatusResolved},
	{ID: "#10003", Status: model.StatusPending},
}

func TestComplaintsStatusFilter(t *testing.T) {
	pending := search.Complaints(complaints, "pending")
	require.Len(t, pending, 2)
	// stable: source order preserved
	assert.Equal(t, "#10001", pending[0].ID)
	assert.Equal(t, "#10003", pending[1].ID)
}

func TestComplaintsAllPassthrough(t *testing.T) {
	assert.Len(t, search.Complaints(complaints, "all"), 3)
	assert.Len(t, search.Complaints(complaints, ""), 3)
}

var schemes = []model.Scheme{
	{ID: 1, Category: "finance", Name: model.LocalizedText{"en": "PM Housing Scheme", "hi": "प्रधानमंत्री आवास योजना"}, Description: model.LocalizedText{"en": "Affordable housing for all", "hi": "सभी के लिए किफायती आवास"}},
	{ID: 2, Category: "health", Name: model.LocalizedText{"en": "Ayushman Bharat", "hi": "आयुष्मान भारत"}, Description: model.LocalizedText{"en": "Health insurance scheme", "hi": "स्वास्थ्य बीमा योजना"}},
	{ID: 4, Category: "agriculture", Name: model.LocalizedText{"en": "PM Kisan Samman Nidhi", "hi": "किसान सम्मान निधि"}, Description: model.LocalizedText{"en": "Financial support for farmers", "hi": "किसानों के लिए आर्थिक सहायता"}},
}

func TestSchemesCategoryFilter(t *testing.T) {
	got := search.Schemes(schemes, "health", "", "en")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestSchemesTermCaseInsensitive(t *testing.T) {
	got := search.Schemes(schemes, "all", "KISAN", "en")
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].ID)
}

func TestSchemesTermMatchesDescription(t *testing.T) {
	got := search.Schemes(schemes, "all", "insurance", "en")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestSchemesTermInHindi(t *testing.T) {
	got := search.Schemes(schemes, "all", "किसान", "hi")
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].ID)
}

func TestSchemesCategoryAndTermCombine(t *testing.T) {
	// category passes but term does not
	assert.Empty(t, search.Schemes(schemes, "health", "kisan", "en"))
	// term passes but category does not
	assert.Empty(t, search.Schemes(schemes, "finance", "kisan", "en"))
}
