package handler

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"dictko/internal/domain"
	"dictko/internal/service"
	"dictko/internal/session"
	"dictko/internal/word"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleIndex renders the search form
func (h *Handler) handleIndex(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", pageData{})
}

// handleSearch validates the submitted word and redirects to its page
func (h *Handler) handleSearch(c *gin.Context) {
	w, err := word.Parse(c.PostForm("word"))
	if err != nil {
		h.redirect(c, "/", session.CategoryError, validationMessage(err))
		return
	}
	c.Redirect(http.StatusFound, wordPath(w))
}

// handleWord runs the lookup pipeline and renders the definition
func (h *Handler) handleWord(c *gin.Context) {
	raw := c.Param("word")

	result, err := h.lookupService.Lookup(c.Request.Context(), raw, clientAddress(c))
	if err != nil {
		if errors.Is(err, domain.ErrInternal) {
			_ = c.Error(err)
		}
		h.redirect(c, "/", session.CategoryError, lookupMessage(err, word.Normalize(raw)))
		return
	}

	h.render(c, http.StatusOK, "index.html", pageData{
		Word:   result.Word,
		Result: result,
	})
}

// handlePronounce streams the MP3 pronunciation. Errors are JSON except for
// browser navigations, which get a flash message and a redirect.
func (h *Handler) handlePronounce(c *gin.Context) {
	raw := c.Param("word")

	audio, filename, err := h.pronunciationService.Pronounce(c.Request.Context(), raw, c.Param("speed"))
	if err != nil {
		h.pronounceError(c, word.Normalize(raw), err)
		return
	}
	defer func() {
		if cerr := audio.Close(); cerr != nil {
			h.logger.Warn("Failed to remove pronunciation file", zap.Error(cerr))
		}
	}()

	c.DataFromReader(http.StatusOK, audio.Size, "audio/mpeg", audio, map[string]string{
		"Content-Disposition": mime.FormatMediaType("inline", map[string]string{"filename": filename}),
	})
}

func (h *Handler) pronounceError(c *gin.Context, w string, err error) {
	status := http.StatusInternalServerError
	message := msgPronounceFailed
	location := wordPath(w)
	if errors.Is(err, domain.ErrValidation) {
		status = http.StatusBadRequest
		message = validationMessage(err)
		if !errors.Is(err, service.ErrUnknownSpeed) {
			location = "/"
		}
	} else {
		_ = c.Error(err)
	}

	if wantsHTML(c) {
		h.redirect(c, location, session.CategoryError, message)
		return
	}
	c.JSON(status, gin.H{"error": message})
}

// wantsHTML reports whether the request is a browser page navigation
func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
