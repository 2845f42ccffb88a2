package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denguetect/denguetect-api/schema"
	"github.com/denguetect/denguetect-api/utils"
)

// getSymptoms lists the symptom vocabulary in the requested language
func (s *Server) getSymptoms(c *gin.Context) {
	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}

	c.JSON(http.StatusOK, gin.H{
		"symptoms": utils.LocalizeSymptoms(lang, schema.Symptoms),
	})
}
