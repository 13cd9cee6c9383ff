package handler

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"dictko/internal/domain"
	"dictko/internal/metrics"
	"dictko/internal/middleware"
	"dictko/internal/service"
	"dictko/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const healthTimeout = 2 * time.Second

// Pinger reports database reachability
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves the dictionary web front-end
type Handler struct {
	lookupService        *service.LookupService
	favoriteService      *service.FavoriteService
	historyService       *service.HistoryService
	pronunciationService *service.PronunciationService
	flash                *session.Flasher
	db                   Pinger
	logger               *zap.Logger
}

// NewHandler creates a new handler instance. db may be nil when persistence is disabled.
func NewHandler(
	lookupService *service.LookupService,
	favoriteService *service.FavoriteService,
	historyService *service.HistoryService,
	pronunciationService *service.PronunciationService,
	flash *session.Flasher,
	db Pinger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		lookupService:        lookupService,
		favoriteService:      favoriteService,
		historyService:       historyService,
		pronunciationService: pronunciationService,
		flash:                flash,
		db:                   db,
		logger:               logger,
	}
}

// Templates parses the embedded HTML templates
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// RegisterRoutes installs middleware, templates and all routes on router
func (h *Handler) RegisterRoutes(router *gin.Engine, m *metrics.Metrics) {
	router.SetHTMLTemplate(Templates())

	// Recovery runs inside Logger and metrics
	router.Use(middleware.Logger(h.logger))
	router.Use(m.Middleware())
	router.Use(middleware.Recovery(h.logger, h.renderServerError))

	// Pages
	router.GET("/", h.handleIndex)
	router.POST("/search", h.handleSearch)
	router.GET("/word/:word", h.handleWord)
	router.GET("/pronounce/:word", h.handlePronounce)
	router.GET("/pronounce/:word/:speed", h.handlePronounce)

	// Favorites
	router.POST("/favorite/:word", h.handleAddFavorite)
	router.GET("/favorites", h.handleFavorites)
	router.POST("/remove_favorite/:id", h.handleRemoveFavorite)

	// JSON API
	router.GET("/api/search_history", h.handleSearchHistory)
	router.GET("/api/random-word", h.handleRandomWord)

	// Operations
	router.GET("/healthz", h.handleHealth)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/favicon.ico", noContent)
	router.GET("/favicon.png", noContent)

	router.NoRoute(h.renderNotFound)
}

// pageData is the view model shared by the HTML templates
type pageData struct {
	Word             string
	Result           *domain.WordResult
	Favorites        []domain.Favorite
	Flash            *session.Message
	Error            string
	FavoritesEnabled bool
}

// render pops any pending flash message and renders name
func (h *Handler) render(c *gin.Context, status int, name string, data pageData) {
	if msg, ok := h.flash.Pop(c); ok {
		data.Flash = &msg
	}
	data.FavoritesEnabled = h.favoriteService.Enabled()
	c.HTML(status, name, data)
}

// redirect flashes text and sends the client to location
func (h *Handler) redirect(c *gin.Context, location, category, text string) {
	if text != "" {
		h.flash.Set(c, category, text)
	}
	c.Redirect(http.StatusFound, location)
}

func (h *Handler) renderNotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "index.html", pageData{Error: msgPageNotFound})
}

func (h *Handler) renderServerError(c *gin.Context) {
	h.render(c, http.StatusInternalServerError, "index.html", pageData{Error: msgServerError})
}

// clientAddress identifies the client that owns history and favorites
func clientAddress(c *gin.Context) string {
	return c.ClientIP()
}

func wordPath(w string) string {
	return "/word/" + url.PathEscape(w)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
