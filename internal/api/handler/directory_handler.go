package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carboncell/user-auth/internal/core/domain"
	"github.com/carboncell/user-auth/internal/core/ports"
)

const defaultEntryLimit = 10

// DirectoryHandler proxies the public-apis directory. On failure it returns
// an empty list: upstream client-class statuses pass through, anything else
// becomes a 400.
type DirectoryHandler struct {
	service ports.DirectoryService
	log     zerolog.Logger
}

func NewDirectoryHandler(service ports.DirectoryService, log zerolog.Logger) *DirectoryHandler {
	return &DirectoryHandler{service: service, log: log}
}

// List returns every directory entry.
//
// @Summary      List public APIs
// @Tags         test
// @Produce      json
// @Success      200  {array}  domain.APIEntry
// @Router       /api/test/public-apis [get]
func (h *DirectoryHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Filter returns the entries matching the category query parameter,
// case-insensitively. No category means no filtering.
//
// @Summary      Filter public APIs by category
// @Tags         test
// @Produce      json
// @Param        category  query    string  false  "Category name"
// @Success      200       {array}  domain.APIEntry
// @Router       /api/test/public-apis/filters [get]
func (h *DirectoryHandler) Filter(c echo.Context) error {
	entries, err := h.service.FilterByCategory(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Limit returns the first N entries, defaulting to 10.
//
// @Summary      Limit public API entries
// @Tags         test
// @Produce      json
// @Param        limit  query    int     false  "Maximum entries"  default(10)
// @Success      200    {array}  domain.APIEntry
// @Router       /api/test/public-apis/limit [get]
func (h *DirectoryHandler) Limit(c echo.Context) error {
	limit := defaultEntryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, []domain.APIEntry{})
		}
		limit = parsed
	}

	entries, err := h.service.Limit(c.Request().Context(), limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *DirectoryHandler) fail(c echo.Context, err error) error {
	h.log.Error().Err(err).Msg("directory proxy failed")

	var upstream *domain.UpstreamStatusError
	if errors.As(err, &upstream) && upstream.StatusCode >= 400 && upstream.StatusCode < 500 {
		return c.JSON(upstream.StatusCode, []domain.APIEntry{})
	}
	return c.JSON(http.StatusBadRequest, []domain.APIEntry{})
}
