package handler

import "github.com/gin-gonic/gin"

// requestLang picks the display language for the request. Only the supported
// set {en, hi} is accepted; anything else falls back to the process default.
func requestLang(c *gin.Context, def string) string {
	switch lang := c.Query("lang"); lang {
	case "en", "hi":
		return lang
	}
	if def == "hi" {
		return "hi"
	}
	return "en"
}
