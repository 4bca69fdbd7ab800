package handlers

import (
	"github.com/gofiber/fiber/v2"

	"synthesistalk-backend/internal/apperr"
	"synthesistalk-backend/internal/libraries"
)

type SearchHandler struct {
	search *libraries.SearchClient
}

func NewSearchHandler(search *libraries.SearchClient) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search proxies the query to the web-search provider.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return apperr.New(apperr.CodeInvalidArgument, "Query parameter 'q' is required")
	}

	results, err := h.search.Search(c.Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"results": results})
}
