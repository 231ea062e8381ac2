package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sapirguy-gs/Stocks-Status/internal/service"
	"github.com/sapirguy-gs/Stocks-Status/pkg/market"
)

type NewsProvider interface {
	GeneralNews(ctx context.Context) ([]market.Article, error)
	SymbolNews(ctx context.Context, symbol string) (*service.SymbolQuote, error)
}

type NewsHandler struct {
	provider NewsProvider
}

func NewNewsHandler(provider NewsProvider) *NewsHandler {
	return &NewsHandler{provider: provider}
}

func (h *NewsHandler) GetGeneralNews(c *gin.Context) {
	articles, err := h.provider.GeneralNews(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *NewsHandler) GetSymbolNews(c *gin.Context) {
	symbol := c.Param("symbol")

	quote, err := h.provider.SymbolNews(c.Request.Context(), symbol)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError maps service errors onto the error body shape
// {"error": <category>, "message": <detail>}. Unexpected errors get a generic
// message; the detail stays in the server log.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotConfigured) {
		slog.Error("request rejected, missing configuration", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Configuration error",
			"message": err.Error(),
		})
		return
	}

	var upstream *market.UpstreamError
	if errors.As(err, &upstream) {
		if upstream.RateLimited() {
			slog.Warn("upstream rate limit hit")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"message": "upstream rate limit exceeded, try again later",
			})
			return
		}

		slog.Error("upstream request failed", "status", upstream.StatusCode, "error", err)
		status := upstream.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{
			"error":   "Upstream error",
			"message": upstream.Message,
		})
		return
	}

	slog.Error("unexpected error handling request", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal error",
		"message": "internal server error",
	})
}
