package category

import (
	"math"
	"strings"

	"github.com/webtimed/webtimed/internal/core/model"
)

const (
	// Minimum combined keyword score before the heuristic classifier will
	// hazard a verdict at all.
	minKeywordScore = 3
	// The winning side must hold at least this share of the total score.
	dominanceThreshold = 60
	maxConfidence      = 95
)

// Source tags on heuristic classifications.
const SourceMetadata = "metadata"

// Resolver answers "what category is this domain" through an ordered chain:
// user overrides, builtin dictionary, heuristic auto cache, Neutral default.
type Resolver struct {
	stages []stage
}

type stage func(d string) (model.Category, bool)

// NewResolver builds a resolver over the three category layers. The auto
// cache is consulted by exact match only; overrides and the builtin
// dictionary also match by domain suffix.
func NewResolver(overrides, auto model.CategoryMap) *Resolver {
	return &Resolver{
		stages: []stage{
			exactLookup(overrides),
			suffixLookup(overrides),
			exactLookup(Defaults),
			suffixLookup(Defaults),
			exactLookup(auto),
		},
	}
}

// Resolve walks the chain and stops at the first stage with an answer.
func (r *Resolver) Resolve(d string) model.Category {
	for _, s := range r.stages {
		if cat, ok := s(d); ok {
			return cat
		}
	}
	return model.CategoryNeutral
}

func exactLookup(m model.CategoryMap) stage {
	return func(d string) (model.Category, bool) {
		cat, ok := m[d]
		return cat, ok
	}
}

func suffixLookup(m model.CategoryMap) stage {
	return func(d string) (model.Category, bool) {
		// Longest matching key wins, so a tighter override on a subdomain
		// beats its parent. Must not depend on map iteration order.
		best := ""
		for key := range m {
			if strings.HasSuffix(d, "."+key) && len(key) > len(best) {
				best = key
			}
		}
		if best == "" {
			return "", false
		}
		return m[best], true
	}
}

// ClassifyMetadata scores page metadata against the keyword tables and
// returns a verdict, or nil when the signal is too weak to call. OG type and
// TLD rules short-circuit keyword scoring when present. This runs outside
// the accrual hot path; confident results land in the auto cache.
func ClassifyMetadata(d string, meta model.PageMetadata) *model.Classification {
	text := strings.ToLower(meta.Title + " " + meta.Description + " " + meta.Keywords + " " + d)

	if meta.OGType != "" {
		if cat, ok := ogTypeMapping[strings.ToLower(meta.OGType)]; ok {
			return &model.Classification{Category: cat, Confidence: 75, Source: SourceMetadata}
		}
	}

	for _, rule := range tldRules {
		if strings.HasSuffix(d, rule.suffix) {
			return &model.Classification{Category: rule.category, Confidence: 70, Source: SourceMetadata}
		}
	}

	prodScore := keywordScore(text, productivityKeywords)
	entScore := keywordScore(text, entertainmentKeywords)

	totalScore := prodScore + entScore
	if totalScore < minKeywordScore {
		return nil
	}

	winnerScore := prodScore
	winner := model.CategoryProductivity
	if entScore >= prodScore {
		winnerScore = entScore
		winner = model.CategoryEntertainment
	}

	confidence := int(math.Round(float64(winnerScore) / float64(totalScore) * 100))
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	if confidence < dominanceThreshold {
		return nil
	}

	return &model.Classification{Category: winner, Confidence: confidence, Source: SourceMetadata}
}

func keywordScore(text string, keywords []weightedKeyword) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw.keyword) {
			score += kw.weight
		}
	}
	return score
}
