package handler

import (
	"context"
	"net/http"

	"dictko/internal/word"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleSearchHistory returns the client's recent distinct searches. Failures
// degrade to an empty list.
func (h *Handler) handleSearchHistory(c *gin.Context) {
	words, err := h.historyService.Recent(c.Request.Context(), clientAddress(c))
	if err != nil {
		h.logger.Error("Error getting search history", zap.Error(err))
		words = []string{}
	}
	c.JSON(http.StatusOK, words)
}

// handleRandomWord returns a word from the curated list
func (h *Handler) handleRandomWord(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"word": word.Random()})
}

// handleHealth reports liveness and, when configured, database reachability
func (h *Handler) handleHealth(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("Database health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}
