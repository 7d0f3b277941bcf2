package pipeline

import (
	"context"
	"sort"
	"time"

	"github.com/jonesrussell/creative-radar/internal/domain"
	"github.com/jonesrussell/creative-radar/internal/telemetry"
)

// Logger defines the logging interface needed by the pipeline.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Source supplies content records from one upstream collector. Fetch may
// hit the network; the pipeline isolates per-source failures.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.ContentItem, error)
}

// Tagger classifies one record against the offer.
type Tagger interface {
	Tag(item *domain.ContentItem) (*domain.Tags, error)
}

// Scorer ranks one tagged record.
type Scorer interface {
	Score(item *domain.ContentItem, tags *domain.Tags) (*domain.Scores, error)
}

// Miner derives a pattern summary from a ranked collection.
type Miner interface {
	Mine(items []domain.RankedItem) *domain.PatternSummary
}

// Result is the full output of one pipeline run.
type Result struct {
	Items   []domain.RankedItem    `json:"items"`
	Summary *domain.PatternSummary `json:"summary"`
	Briefs  []domain.StageBrief    `json:"briefs"`

	// Skipped counts records dropped because tagging or scoring failed.
	Skipped int `json:"skipped"`
}

// Pipeline merges records from any number of sources, tags and scores
// each one, sorts by total score and mines the ranked set. It is the
// only component aware of multiple sources; the tagger and scorer see
// one record at a time.
type Pipeline struct {
	offer  *domain.OfferSpec
	tagger Tagger
	scorer Scorer
	miner  Miner
	logger Logger
}

// New creates a Pipeline over the given stages.
func New(offer *domain.OfferSpec, tagger Tagger, scorer Scorer, miner Miner, logger Logger) *Pipeline {
	return &Pipeline{
		offer:  offer,
		tagger: tagger,
		scorer: scorer,
		miner:  miner,
		logger: logger,
	}
}

// Run fetches every source, merges and deduplicates the records, then
// processes the merged collection. A source that errors or returns no
// records is skipped with a warning and does not affect records from
// other sources.
func (p *Pipeline) Run(ctx context.Context, sources []Source) (*Result, error) {
	var collected []domain.ContentItem
	for _, src := range sources {
		items, err := src.Fetch(ctx)
		if err != nil {
			p.logger.Warn("source failed, skipping", "source", src.Name(), "error", err)
			telemetry.SourceFailures.WithLabelValues(src.Name()).Inc()
			continue
		}
		if len(items) == 0 {
			p.logger.Warn("source returned no records, skipping", "source", src.Name())
			continue
		}
		p.logger.Info("source fetched", "source", src.Name(), "records", len(items))
		collected = append(collected, items...)
	}

	return p.Process(collected), nil
}

// Process tags, scores, sorts and mines an already-collected record
// set. Records are deduplicated by stable identifier before tagging; a
// failure on one record drops only that record. Order is deterministic:
// merge order is preserved and the sort is stable, so identical input
// yields identical output.
func (p *Pipeline) Process(items []domain.ContentItem) *Result {
	start := time.Now()
	merged := dedupe(items)
	if d := len(items) - len(merged); d > 0 {
		p.logger.Info("deduplicated records", "duplicates", d, "remaining", len(merged))
	}

	result := &Result{Items: make([]domain.RankedItem, 0, len(merged))}
	for i := range merged {
		item := merged[i]

		tags, err := p.tagger.Tag(&item)
		if err != nil {
			p.logger.Warn("tagging failed, skipping record",
				"source", item.Source, "id", item.DedupeKey(), "error", err)
			telemetry.RecordsFailed.WithLabelValues(item.Source).Inc()
			result.Skipped++
			continue
		}

		scores, err := p.scorer.Score(&item, tags)
		if err != nil {
			p.logger.Warn("scoring failed, skipping record",
				"source", item.Source, "id", item.DedupeKey(), "error", err)
			telemetry.RecordsFailed.WithLabelValues(item.Source).Inc()
			result.Skipped++
			continue
		}

		telemetry.RecordsProcessed.WithLabelValues(item.Source).Inc()
		telemetry.ReuseStyles.WithLabelValues(scores.ReuseStyle).Inc()
		result.Items = append(result.Items, domain.RankedItem{Item: item, Tags: *tags, Scores: *scores})
	}

	sort.SliceStable(result.Items, func(i, j int) bool {
		return result.Items[i].Scores.Total > result.Items[j].Scores.Total
	})

	result.Summary = p.miner.Mine(result.Items)
	result.Briefs = p.buildBriefs(result.Summary)

	telemetry.RunDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("pipeline run complete",
		"ranked", len(result.Items),
		"skipped", result.Skipped,
		"duration_ms", time.Since(start).Milliseconds())

	return result
}
