package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/surajmeruva0786/DigiGov10/internal/catalog"
	"github.com/surajmeruva0786/DigiGov10/internal/i18n"
	"github.com/surajmeruva0786/DigiGov10/internal/search"
)

type SchemeHandler struct {
	catalog     *catalog.Catalog
	messages    *i18n.Localizer
	defaultLang string
}

func NewSchemeHandler(cat *catalog.Catalog, messages *i18n.Localizer, defaultLang string) *SchemeHandler {
	return &SchemeHandler{catalog: cat, messages: messages, defaultLang: defaultLang}
}

// List filters the catalog by category and free-text term. Schemes are
// returned with the full per-language mappings; lang only selects the
// language the term is matched against.
func (h *SchemeHandler) List(c *gin.Context) {
	category := c.DefaultQuery("category", search.All)
	term := c.Query("q")
	lang := requestLang(c, h.defaultLang)

	items := h.catalog.Filter(category, term, lang)
	c.JSON(http.StatusOK, gin.H{
		"schemes": items,
		"total":   len(items),
	})
}

func (h *SchemeHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	scheme, ok := h.catalog.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "scheme not found"})
		return
	}
	c.JSON(http.StatusOK, scheme)
}
