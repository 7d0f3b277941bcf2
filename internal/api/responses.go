package api

import (
	"github.com/jonesrussell/creative-radar/internal/database"
	"github.com/jonesrussell/creative-radar/internal/domain"
)

// TagRequest carries one record and the offer to classify it against.
type TagRequest struct {
	Offer *domain.OfferSpec   `json:"offer" binding:"required"`
	Item  *domain.ContentItem `json:"item"  binding:"required"`
}

// TagResponse carries the derived tags.
type TagResponse struct {
	Tags *domain.Tags `json:"tags"`
}

// ScoreRequest carries one record and the offer to score it against.
type ScoreRequest struct {
	Offer *domain.OfferSpec   `json:"offer" binding:"required"`
	Item  *domain.ContentItem `json:"item"  binding:"required"`
}

// ScoreResponse carries the derived tags and scores.
type ScoreResponse struct {
	Tags   *domain.Tags   `json:"tags"`
	Scores *domain.Scores `json:"scores"`
}

// AnalyzeRequest carries a full record collection plus the offer. TopN
// overrides the configured mining cutoff when positive.
type AnalyzeRequest struct {
	Offer *domain.OfferSpec    `json:"offer" binding:"required"`
	Items []domain.ContentItem `json:"items" binding:"required,min=1"`
	TopN  int                  `json:"top_n"`
}

// AnalyzeResponse is the full pipeline output.
type AnalyzeResponse struct {
	Items   []domain.RankedItem    `json:"items"`
	Summary *domain.PatternSummary `json:"summary"`
	Briefs  []domain.StageBrief    `json:"briefs"`
	Skipped int                    `json:"skipped"`
}

// RunsListResponse lists persisted analysis runs.
type RunsListResponse struct {
	Runs  []*database.AnalysisRun `json:"runs"`
	Total int                     `json:"total"`
}
