package handlers

import (
	"net/http"

	"mortgageschedule/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type TraceHandler struct {
	reader interfaces.TraceReader
}

func NewTraceHandler(reader interfaces.TraceReader) *TraceHandler {
	return &TraceHandler{reader: reader}
}

// GetTrace returns the retained diagnostic lines of one run.
func (h *TraceHandler) GetTrace(c *gin.Context) {
	traceID := c.Param("traceId")

	lines, err := h.reader.Lines(c.Request.Context(), traceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(lines) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No trace found for id " + traceID})
		return
	}

	c.JSON(http.StatusOK, gin.H{"traceId": traceID, "lines": lines})
}
