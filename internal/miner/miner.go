package miner

import (
	"sort"

	"github.com/jonesrussell/creative-radar/internal/domain"
)

// Logger defines the logging interface needed by the miner.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Mining output caps.
const (
	DefaultTopN = 30

	minHookLineLen      = 16 // runes, not bytes
	maxHookLines        = 20
	maxScrollStoppers   = 15
	maxTableEntries     = 10
	maxProofStyles      = 5
	maxStageHookLines   = 5
	scrollStopperMinFit = 0.1
)

// Miner extracts cross-record statistics and reusable creative
// primitives from a ranked collection.
type Miner struct {
	topN   int
	logger Logger
}

// New creates a Miner with the default top-N cutoff.
func New(logger Logger) *Miner {
	return NewWithTopN(DefaultTopN, logger)
}

// NewWithTopN creates a Miner with an explicit top-N cutoff.
func NewWithTopN(topN int, logger Logger) *Miner {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Miner{topN: topN, logger: logger}
}

// Mine sorts the collection descending by total score, takes the top-N
// slice, and derives a PatternSummary from it. The input slice is not
// mutated; ties keep their original relative order so identical input
// always yields an identical summary.
func (m *Miner) Mine(items []domain.RankedItem) *domain.PatternSummary {
	ranked := make([]domain.RankedItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Scores.Total > ranked[j].Scores.Total
	})
	if len(ranked) > m.topN {
		ranked = ranked[:m.topN]
	}

	summary := &domain.PatternSummary{
		SampleSize:     len(ranked),
		StageHookLines: make(map[string][]string),
	}
	if len(ranked) == 0 {
		m.logger.Warn("mining empty collection")
		return summary
	}

	hookTypes := newCounter()
	stages := newCounter()
	pains := newCounter()
	ctas := newCounter()
	contentTypes := newCounter()
	authors := newCounter()
	proofs := newCounter()

	seenHooks := make(map[string]bool)
	totalWords := 0

	for _, r := range ranked {
		hookTypes.add(r.Tags.HookType)
		stages.add(r.Tags.AwarenessStage)
		pains.addAll(r.Tags.PainPoints)
		ctas.add(r.Tags.CTAType)
		contentTypes.add(r.Tags.ContentType)
		authors.add(r.Item.Author)
		proofs.addAll(proofStyles(r.Item.Text))
		totalWords += r.Tags.WordCount

		line := r.Tags.HookLine
		if len([]rune(line)) < minHookLineLen || seenHooks[line] {
			continue
		}
		seenHooks[line] = true

		if len(summary.HookLines) < maxHookLines {
			summary.HookLines = append(summary.HookLines, line)
		}
		if r.Tags.FitScore >= scrollStopperMinFit && len(summary.ScrollStoppers) < maxScrollStoppers {
			summary.ScrollStoppers = append(summary.ScrollStoppers, line)
		}
		stage := r.Tags.AwarenessStage
		if stage != domain.StageUnclassified && len(summary.StageHookLines[stage]) < maxStageHookLines {
			summary.StageHookLines[stage] = append(summary.StageHookLines[stage], line)
		}
	}

	summary.HookTypes = hookTypes.top(maxTableEntries)
	summary.AwarenessStages = stages.top(maxTableEntries)
	summary.PainPoints = pains.top(maxTableEntries)
	summary.CTATypes = ctas.top(maxTableEntries)
	summary.ContentTypes = contentTypes.top(maxTableEntries)
	summary.TopAuthors = authors.top(maxTableEntries)
	summary.ProofStyles = proofs.top(maxProofStyles)
	summary.MeanWordCount = float64(totalWords) / float64(len(ranked))

	m.logger.Info("mined pattern summary",
		"sample_size", summary.SampleSize,
		"hook_lines", len(summary.HookLines),
		"scroll_stoppers", len(summary.ScrollStoppers))

	return summary
}
