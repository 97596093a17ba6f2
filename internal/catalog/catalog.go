// Package catalog serves the government-scheme reference data: immutable,
// bilingual, loaded once per process from the embedded sample set.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/surajmeruva0786/DigiGov10/internal/model"
	"github.com/surajmeruva0786/DigiGov10/internal/search"
)

//go:embed schemes.json
var schemesJSON []byte

type Catalog struct {
	schemes []model.Scheme
}

func Load() (*Catalog, error) {
	var schemes []model.Scheme
	if err := json.Unmarshal(schemesJSON, &schemes); err != nil {
		return nil, fmt.Errorf("catalog: parse schemes: %w", err)
	}
	return &Catalog{schemes: schemes}, nil
}

// All returns every scheme in catalog order.
func (c *Catalog) All() []model.Scheme {
	return slices.Clone(c.schemes)
}

// Filter applies the category and free-text predicates; term is matched
// against the lang rendering of name and description.
func (c *Catalog) Filter(category, term, lang string) []model.Scheme {
	return search.Schemes(c.schemes, category, term, lang)
}

// ByID returns the scheme with the given id.
func (c *Catalog) ByID(id int) (model.Scheme, bool) {
	for _, s := range c.schemes {
		if s.ID == id {
			return s, true
		}
	}
	return model.Scheme{}, false
}
