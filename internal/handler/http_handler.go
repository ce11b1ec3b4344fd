package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manglass/cuid/internal/generator"
	pkglog "github.com/manglass/cuid/pkg/log"
	"github.com/manglass/cuid/pkg/response"
)

// HTTPHandler exposes the identifier strategies over HTTP.
type HTTPHandler struct {
	generators map[string]generator.Generator
	maxBatch   int
}

func NewHTTPHandler(generators map[string]generator.Generator, maxBatch int) *HTTPHandler {
	return &HTTPHandler{
		generators: generators,
		maxBatch:   maxBatch,
	}
}

func (h *HTTPHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/ids", h.GenerateIDs)
		api.POST("/ids/validate", h.ValidateID)
		api.POST("/ids/parse", h.ParseID)
	}

	r.GET("/health", h.HealthCheck)
}

type generateRequest struct {
	Type  string `json:"type" binding:"required"`
	Count int    `json:"count"`
}

type idRequest struct {
	Type string `json:"type" binding:"required"`
	ID   string `json:"id" binding:"required"`
}

func (h *HTTPHandler) generatorFor(c *gin.Context, name string) (generator.Generator, bool) {
	gen, ok := h.generators[name]
	if !ok {
		response.BadRequest(c, fmt.Sprintf("unknown ID type %q", name))
		return nil, false
	}
	return gen, true
}

func (h *HTTPHandler) GenerateIDs(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}
	if req.Count < 1 || req.Count > h.maxBatch {
		response.BadRequest(c, fmt.Sprintf("count must be between 1 and %d, got %d", h.maxBatch, req.Count))
		return
	}

	gen, ok := h.generatorFor(c, req.Type)
	if !ok {
		return
	}

	ids, err := gen.GenerateBatch(req.Count)
	if err != nil {
		response.InternalError(c, "failed to generate IDs")
		return
	}

	logger := pkglog.Ctx(c.Request.Context())
	logger.Debug().
		Str(pkglog.FieldIDType, req.Type).
		Int(pkglog.FieldCount, req.Count).
		Msg("identifiers generated")

	if req.Count == 1 {
		response.Success(c, gin.H{"id": ids[0]})
		return
	}
	response.Success(c, gin.H{"ids": ids})
}

func (h *HTTPHandler) ValidateID(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	gen, ok := h.generatorFor(c, req.Type)
	if !ok {
		return
	}

	valid, reason := gen.Validate(req.ID)
	response.Success(c, gin.H{"valid": valid, "reason": reason})
}

func (h *HTTPHandler) ParseID(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	gen, ok := h.generatorFor(c, req.Type)
	if !ok {
		return
	}

	result, err := gen.Parse(req.ID)
	if err != nil {
		response.Success(c, gin.H{"valid": false, "error": err.Error()})
		return
	}
	response.Success(c, gin.H{"valid": true, "fields": result})
}

func (h *HTTPHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
