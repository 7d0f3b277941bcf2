package pipeline

import "github.com/jonesrussell/creative-radar/internal/domain"

// buildBriefs joins the mined summary with the offer's per-stage
// messaging into one brief per funnel stage, in funnel order. Stages the
// offer does not describe still get a brief carrying the competitor
// evidence alone.
func (p *Pipeline) buildBriefs(summary *domain.PatternSummary) []domain.StageBrief {
	briefs := make([]domain.StageBrief, 0, len(domain.FunnelStages))
	for _, stage := range domain.FunnelStages {
		brief := domain.StageBrief{
			Stage:             stage,
			RecommendedFormat: p.recommendedFormat(summary),
			CompetitorHooks:   summary.StageHookLines[stage],
		}
		if hooks, ok := p.offer.StageHooks[stage]; ok {
			brief.Hook = hooks.Hook
			brief.Goal = hooks.Goal
			brief.RecommendedCTA = hooks.CTA
			brief.Outline = hooks.Outline
		}
		briefs = append(briefs, brief)
	}
	return briefs
}

// recommendedFormat picks the most frequent content type from the mined
// sample, falling back to the offer's first preferred format.
func (p *Pipeline) recommendedFormat(summary *domain.PatternSummary) string {
	if len(summary.ContentTypes) > 0 {
		return summary.ContentTypes[0].Label
	}
	if len(p.offer.PreferredFormats) > 0 {
		return p.offer.PreferredFormats[0]
	}
	return ""
}
