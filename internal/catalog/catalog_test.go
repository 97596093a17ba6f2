package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surajmeruva0786/DigiGov10/internal/catalog"
)

func TestLoadSampleSet(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	all := cat.All()
	require.Len(t, all, 5)
	// catalog order is the source order
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 5, all[4].ID)
	for _, s := range all {
		assert.Contains(t, s.Name, "en")
		assert.Contains(t, s.Name, "hi")
	}
}

// TestFilterHealthCategory: the health filter over the sample set returns
// exactly Ayushman Bharat.
func TestFilterHealthCategory(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	got := cat.Filter("health", "", "en")
	require.Len(t, got, 1)
	assert.Equal(t, "Ayushman Bharat", got[0].Name["en"])
}

// TestFilterKisanSearch: the case-insensitive term "kisan" finds PM Kisan
// Samman Nidhi in either display language casing.
func TestFilterKisanSearch(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	for _, term := range []string{"kisan", "KISAN", "Kisan"} {
		got := cat.Filter("all", term, "en")
		require.Len(t, got, 1, "term %q", term)
		assert.Equal(t, "PM Kisan Samman Nidhi", got[0].Name["en"])
	}
}

func TestByID(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	scheme, ok := cat.ByID(4)
	require.True(t, ok)
	assert.Equal(t, "agriculture", scheme.Category)

	_, ok = cat.ByID(42)
	assert.False(t, ok)
}
