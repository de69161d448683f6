package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expenso/internal/service"
)

// ParseHandler handles text-to-expense parsing endpoints.
type ParseHandler struct {
	parseService service.ParseService
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(parseService service.ParseService) *ParseHandler {
	return &ParseHandler{parseService: parseService}
}

// Parse handles POST /api/v1/parse
func (h *ParseHandler) Parse(c *gin.Context) {
	var input service.ParseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.parseService.Parse(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Stats handles GET /api/v1/parse/stats
func (h *ParseHandler) Stats(c *gin.Context) {
	usage := h.parseService.Usage()
	RespondOK(c, gin.H{
		"local_parses": usage.LocalParses,
		"remote_calls": usage.RemoteCalls,
		"cache_hits":   usage.CacheHits,
		"total":        usage.Total(),
	})
}

// Reset handles POST /api/v1/parse/reset
func (h *ParseHandler) Reset(c *gin.Context) {
	h.parseService.Reset()
	RespondOK(c, gin.H{"message": "parse session reset"})
}
