package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clearcheck/qualgate/pkg/lexicon"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	lex *lexicon.Matcher
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(lex *lexicon.Matcher) *HealthHandler {
	return &HealthHandler{
		lex: lex,
	}
}

// Health handles basic health check.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "validator",
	})
}

// Ready handles readiness check. The service is stateless; readiness means
// the lexical pattern lists loaded and compiled.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.lex == nil || h.lex.Size(lexicon.Vague) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "pattern lexicon not loaded",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"service": "validator",
		"patterns": gin.H{
			"vague":    h.lex.Size(lexicon.Vague),
			"template": h.lex.Size(lexicon.Template),
			"filler":   h.lex.Size(lexicon.Filler),
		},
	})
}
