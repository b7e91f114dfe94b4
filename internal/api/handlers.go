package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funnelscope/awareness-classifier/internal/classifier"
	"github.com/funnelscope/awareness-classifier/internal/domain"
	"github.com/funnelscope/awareness-classifier/internal/processor"
	"github.com/funnelscope/awareness-classifier/internal/registry"
)

// Logger defines the logging interface.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Pinger reports store connectivity for readiness checks.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler handles HTTP requests for the awareness classifier API.
type Handler struct {
	registry *registry.Registry
	engine   *classifier.Engine
	analyzer *processor.Analyzer
	pinger   Pinger
	logger   Logger
}

// NewHandler creates a new API handler. pinger may be nil; readiness
// then reports ready unconditionally.
func NewHandler(reg *registry.Registry, engine *classifier.Engine, analyzer *processor.Analyzer, pinger Pinger, logger Logger) *Handler {
	return &Handler{
		registry: reg,
		engine:   engine,
		analyzer: analyzer,
		pinger:   pinger,
		logger:   logger,
	}
}

// ClassifyRequest represents a single classification request.
type ClassifyRequest struct {
	ProjectID string                 `json:"project_id" binding:"required"`
	Item      domain.ContentInput    `json:"item"       binding:"required"`
	Context   *domain.ProductContext `json:"context,omitempty"`
}

// BatchClassifyRequest represents a batch classification request.
type BatchClassifyRequest struct {
	ProjectID string                 `json:"project_id" binding:"required"`
	Items     []domain.ContentInput  `json:"items"      binding:"required,min=1,max=100"`
	Context   *domain.ProductContext `json:"context,omitempty"`
}

// AnalyzeRequest represents a full-pipeline analysis request.
type AnalyzeRequest struct {
	Items   []domain.ContentInput  `json:"items"   binding:"required,min=1,max=500"`
	Context *domain.ProductContext `json:"context,omitempty"`
}

// Classify handles POST /api/v1/classify
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid classification request", "error", err)
		respondBadRequest(c, err)
		return
	}

	cctx, err := h.loadContext(c, req.ProjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.engine.Classify(c.Request.Context(), cctx, req.Item, req.Context)
	if err != nil {
		h.logger.Error("Classification failed", "project_id", req.ProjectID, "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ClassifyBatch handles POST /api/v1/classify/batch
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid batch classification request", "error", err)
		respondBadRequest(c, err)
		return
	}

	cctx, err := h.loadContext(c, req.ProjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	results, err := h.engine.ClassifyAll(c.Request.Context(), cctx, req.Items, req.Context)
	if err != nil {
		h.logger.Error("Batch classification failed", "project_id", req.ProjectID, "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"total":   len(results),
	})
}

// Analyze handles POST /api/v1/projects/:project_id/analyze
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid analysis request", "error", err)
		respondBadRequest(c, err)
		return
	}

	projectID := c.Param("project_id")
	report, err := h.analyzer.AnalyzeBatch(c.Request.Context(), projectID, req.Items, req.Context)
	if err != nil {
		h.logger.Error("Analysis failed", "project_id", projectID, "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetPhases handles GET /api/v1/projects/:project_id/phases
func (h *Handler) GetPhases(c *gin.Context) {
	projectID := c.Param("project_id")

	phases, err := h.registry.Load(c.Request.Context(), projectID)
	if err != nil {
		h.logger.Error("Failed to load phases", "project_id", projectID, "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"phases": phases})
}

// ResetPhases handles POST /api/v1/projects/:project_id/phases/reset
// This is destructive: it discards all customization for the project.
func (h *Handler) ResetPhases(c *gin.Context) {
	projectID := c.Param("project_id")

	phases, err := h.registry.ResetToDefaults(c.Request.Context(), projectID)
	if err != nil {
		h.logger.Error("Failed to reset phases", "project_id", projectID, "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"phases": phases})
}

// AddIndicator handles POST /api/v1/projects/:project_id/phases/:phase/indicators
func (h *Handler) AddIndicator(c *gin.Context) {
	var indicator domain.Indicator
	if err := c.ShouldBindJSON(&indicator); err != nil {
		respondBadRequest(c, err)
		return
	}

	projectID := c.Param("project_id")
	phaseName := domain.PhaseName(c.Param("phase"))

	phase, err := h.registry.AddIndicator(c.Request.Context(), projectID, phaseName, indicator)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, phase)
}

// RemoveIndicator handles DELETE /api/v1/projects/:project_id/phases/:phase/indicators/:id
func (h *Handler) RemoveIndicator(c *gin.Context) {
	projectID := c.Param("project_id")
	phaseName := domain.PhaseName(c.Param("phase"))

	phase, err := h.registry.RemoveIndicator(c.Request.Context(), projectID, phaseName, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, phase)
}

// AddAngle handles POST /api/v1/projects/:project_id/phases/:phase/angles
func (h *Handler) AddAngle(c *gin.Context) {
	var angle domain.MarketingAngle
	if err := c.ShouldBindJSON(&angle); err != nil {
		respondBadRequest(c, err)
		return
	}

	projectID := c.Param("project_id")
	phaseName := domain.PhaseName(c.Param("phase"))

	phase, err := h.registry.AddAngle(c.Request.Context(), projectID, phaseName, angle)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, phase)
}

// RemoveAngle handles DELETE /api/v1/projects/:project_id/phases/:phase/angles/:id
func (h *Handler) RemoveAngle(c *gin.Context) {
	projectID := c.Param("project_id")
	phaseName := domain.PhaseName(c.Param("phase"))

	phase, err := h.registry.RemoveAngle(c.Request.Context(), projectID, phaseName, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, phase)
}

// GetRecommendation handles GET /api/v1/projects/:project_id/recommendation
func (h *Handler) GetRecommendation(c *gin.Context) {
	projectID := c.Param("project_id")

	cctx, err := h.loadContext(c, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	recommendation, err := h.engine.Recommend(cctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recommendation)
}

// GetDistribution handles GET /api/v1/projects/:project_id/distribution
func (h *Handler) GetDistribution(c *gin.Context) {
	projectID := c.Param("project_id")

	cctx, err := h.loadContext(c, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	distribution := make(map[domain.PhaseName]float64, len(cctx.Phases))
	for _, phase := range cctx.Phases {
		distribution[phase.Name] = phase.Percentage
	}

	c.JSON(http.StatusOK, gin.H{
		"project_id":   projectID,
		"distribution": distribution,
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ReadyCheck handles GET /ready
func (h *Handler) ReadyCheck(c *gin.Context) {
	if h.pinger != nil {
		if err := h.pinger.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (h *Handler) loadContext(c *gin.Context, projectID string) (*classifier.ClassificationContext, error) {
	phases, err := h.registry.Load(c.Request.Context(), projectID)
	if err != nil {
		return nil, err
	}
	return h.engine.NewContext(projectID, phases), nil
}
