package handler

import (
	"errors"
	"net/http"
	"strconv"

	"dictko/internal/domain"
	"dictko/internal/session"
	"dictko/internal/word"

	"github.com/gin-gonic/gin"
)

// handleAddFavorite saves the word for the client and returns to its page
func (h *Handler) handleAddFavorite(c *gin.Context) {
	raw := c.Param("word")
	w := word.Normalize(raw)

	fav, err := h.favoriteService.Add(c.Request.Context(), raw, clientAddress(c))
	switch {
	case err == nil:
		h.redirect(c, wordPath(fav.Word), session.CategorySuccess, msgFavoriteAdded(fav.Word))
	case errors.Is(err, domain.ErrValidation):
		h.redirect(c, "/", session.CategoryError, validationMessage(err))
	case errors.Is(err, domain.ErrAlreadyExists):
		h.redirect(c, wordPath(w), session.CategoryInfo, msgFavoriteExists(w))
	case errors.Is(err, domain.ErrStorageDisabled):
		h.redirect(c, wordPath(w), session.CategoryError, msgStorageDisabled)
	default:
		_ = c.Error(err)
		h.redirect(c, wordPath(w), session.CategoryError, msgFavoriteFailed)
	}
}

// handleFavorites lists the client's favorites, newest first
func (h *Handler) handleFavorites(c *gin.Context) {
	favorites, err := h.favoriteService.List(c.Request.Context(), clientAddress(c))
	if err != nil {
		message := msgFavoritesFailed
		if errors.Is(err, domain.ErrStorageDisabled) {
			message = msgStorageDisabled
		} else {
			_ = c.Error(err)
		}
		h.redirect(c, "/", session.CategoryError, message)
		return
	}

	h.render(c, http.StatusOK, "favorites.html", pageData{Favorites: favorites})
}

// handleRemoveFavorite deletes one of the client's favorites
func (h *Handler) handleRemoveFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderNotFound(c)
		return
	}

	w, err := h.favoriteService.Remove(c.Request.Context(), id, clientAddress(c))
	switch {
	case err == nil:
		h.redirect(c, "/favorites", session.CategoryInfo, msgFavoriteRemoved(w))
	case errors.Is(err, domain.ErrNotFound):
		h.redirect(c, "/favorites", session.CategoryError, msgFavoriteMissing)
	case errors.Is(err, domain.ErrStorageDisabled):
		h.redirect(c, "/", session.CategoryError, msgStorageDisabled)
	default:
		_ = c.Error(err)
		h.redirect(c, "/favorites", session.CategoryError, msgRemoveFailed)
	}
}
