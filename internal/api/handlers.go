// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonesrussell/creative-radar/internal/database"
	"github.com/jonesrussell/creative-radar/internal/domain"
	"github.com/jonesrussell/creative-radar/internal/miner"
	"github.com/jonesrussell/creative-radar/internal/pipeline"
	"github.com/jonesrussell/creative-radar/internal/ranker"
	"github.com/jonesrussell/creative-radar/internal/tagger"
)

// Logger defines the logging interface.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

const (
	defaultRunsLimit = 50
	maxRunsLimit     = 200
)

// Handler handles HTTP requests for the analysis API. Taggers and
// rankers are built per request because every request carries its own
// offer.
type Handler struct {
	weights  ranker.Weights
	topN     int
	runsRepo *database.RunsRepository
	tracer   trace.Tracer
	logger   Logger
}

// NewHandler creates a new API handler. runsRepo may be nil when run
// history is disabled.
func NewHandler(weights ranker.Weights, topN int, runsRepo *database.RunsRepository, tracer trace.Tracer, logger Logger) *Handler {
	return &Handler{
		weights:  weights,
		topN:     topN,
		runsRepo: runsRepo,
		tracer:   tracer,
		logger:   logger,
	}
}

// Tag handles POST /api/v1/tag.
func (h *Handler) Tag(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid tag request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := tagger.New(req.Offer, h.logger)
	tags, err := t.Tag(req.Item)
	if err != nil {
		h.logger.Error("tagging failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, TagResponse{Tags: tags})
}

// Score handles POST /api/v1/score. The record is tagged first; scoring
// always runs over fresh tags.
func (h *Handler) Score(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid score request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := tagger.New(req.Offer, h.logger)
	tags, err := t.Tag(req.Item)
	if err != nil {
		h.logger.Error("tagging failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	e := ranker.NewWithConfig(req.Offer, ranker.Config{Weights: h.weights, ReferenceTime: time.Now()}, h.logger)
	scores, err := e.Score(req.Item, tags)
	if err != nil {
		h.logger.Error("scoring failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ScoreResponse{Tags: tags, Scores: scores})
}

// Analyze handles POST /api/v1/analyze: the full pipeline over the
// request-supplied records.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topN := h.topN
	if req.TopN > 0 {
		topN = req.TopN
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "analyze",
		trace.WithAttributes(
			attribute.String("offer", req.Offer.Name),
			attribute.Int("records", len(req.Items)),
		))
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	t := tagger.New(req.Offer, h.logger)
	e := ranker.NewWithConfig(req.Offer, ranker.Config{Weights: h.weights, ReferenceTime: time.Now()}, h.logger)
	m := miner.NewWithTopN(topN, h.logger)
	p := pipeline.New(req.Offer, t, e, m, h.logger)

	result := p.Process(req.Items)
	span.SetAttributes(
		attribute.Int("ranked", len(result.Items)),
		attribute.Int("skipped", result.Skipped),
	)

	h.logger.Info("analysis complete",
		"offer", req.Offer.Name,
		"ranked", len(result.Items),
		"skipped", result.Skipped)

	if h.runsRepo != nil {
		h.saveRun(c, req.Offer, result)
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Items:   result.Items,
		Summary: result.Summary,
		Briefs:  result.Briefs,
		Skipped: result.Skipped,
	})
}

// saveRun persists a completed run. Persistence failures are logged and
// the response still succeeds.
func (h *Handler) saveRun(c *gin.Context, offer *domain.OfferSpec, result *pipeline.Result) {
	topStages := make([]string, 0, len(result.Summary.AwarenessStages))
	for _, e := range result.Summary.AwarenessStages {
		topStages = append(topStages, e.Label)
	}

	run := &database.AnalysisRun{
		OfferName:    offer.Name,
		RecordCount:  len(result.Items),
		SkippedCount: result.Skipped,
		SampleSize:   result.Summary.SampleSize,
		TopHookLines: result.Summary.HookLines,
		TopStages:    topStages,
	}
	if err := h.runsRepo.Create(c.Request.Context(), run); err != nil {
		h.logger.Error("failed to persist analysis run", "offer", offer.Name, "error", err)
		return
	}
	h.logger.Info("analysis run persisted", "run_id", run.ID)
}

// ListRuns handles GET /api/v1/runs.
func (h *Handler) ListRuns(c *gin.Context) {
	if h.runsRepo == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "run history is disabled"})
		return
	}

	limit := defaultRunsLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		if parsed > maxRunsLimit {
			parsed = maxRunsLimit
		}
		limit = parsed
	}

	runs, err := h.runsRepo.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list analysis runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, RunsListResponse{Runs: runs, Total: len(runs)})
}

// GetRun handles GET /api/v1/runs/:id.
func (h *Handler) GetRun(c *gin.Context) {
	if h.runsRepo == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "run history is disabled"})
		return
	}

	run, err := h.runsRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		h.logger.Error("failed to get analysis run", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, run)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadyCheck handles GET /ready.
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
