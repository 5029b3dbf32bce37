package content

import (
	"sort"

	"github.com/jonathan/survey-profiler/internal/scoring"
	"github.com/jonathan/survey-profiler/internal/types"
)

// selectionSize is the fixed number of items per output category.
const selectionSize = 3

// scoredDimension is one (dimension, score, band) triple considered for
// selection.
type scoredDimension struct {
	Dim   types.Dimension
	Score float64
	Band  types.Band
}

// scoredDimensions returns the triples for every dimension with a present
// score, in fixed dimension order.
func scoredDimensions(scores types.DimensionScores) []scoredDimension {
	var out []scoredDimension
	for _, dim := range types.DimensionOrder {
		if score, ok := scores.Get(dim); ok {
			out = append(out, scoredDimension{Dim: dim, Score: score, Band: scoring.BandFor(score)})
		}
	}
	return out
}

// filterBands keeps only triples whose band is in the given set.
func filterBands(all []scoredDimension, bands ...types.Band) []scoredDimension {
	var out []scoredDimension
	for _, sd := range all {
		for _, b := range bands {
			if sd.Band == b {
				out = append(out, sd)
				break
			}
		}
	}
	return out
}

// sortByScore orders candidates by score (descending when desc), with ties
// broken by the fixed dimension display order.
func sortByScore(candidates []scoredDimension, desc bool) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			if desc {
				return candidates[i].Score > candidates[j].Score
			}
			return candidates[i].Score < candidates[j].Score
		}
		return candidates[i].Dim.OrderIndex() < candidates[j].Dim.OrderIndex()
	})
}

// padPlaceholders fills a selection up to exactly three items. The first
// placeholder of an entirely-empty selection carries the distinct "none
// identified" title; every other placeholder carries the "no additional"
// title. All placeholders share one caution body and the tools icon.
func padPlaceholders(items []types.ContentItem, emptyTitle, paddingTitle string) []types.ContentItem {
	none := len(items) == 0
	for len(items) < selectionSize {
		title := paddingTitle
		if none && len(items) == 0 {
			title = emptyTitle
		}
		items = append(items, types.ContentItem{
			Icon:  types.Icon{Kind: types.IconTools},
			Title: title,
			Body:  splitBodyLines(placeholderBody),
		})
	}
	return items
}

// SelectKeyStrengths picks the top three High / Very High dimensions by
// descending score, padding with placeholders when fewer qualify.
func SelectKeyStrengths(scores types.DimensionScores) []types.ContentItem {
	candidates := filterBands(scoredDimensions(scores), types.BandHigh, types.BandVeryHigh)
	sortByScore(candidates, true)
	if len(candidates) > selectionSize {
		candidates = candidates[:selectionSize]
	}

	items := make([]types.ContentItem, 0, selectionSize)
	for _, sd := range candidates {
		items = append(items, types.ContentItem{
			Dimension: sd.Dim,
			Icon:      types.Icon{Kind: types.IconShield},
			Title:     itemTitle(sd.Dim, sd.Score),
			Body:      formatBodyToLines(strengthTexts[sd.Dim][sd.Band]),
		})
	}

	return padPlaceholders(items, noStrengthsTitle, noAdditionalStrengthsTitle)
}

// SelectDevelopmentAreas picks the three worst Developing / Low dimensions
// by ascending score. Developing-band items carry the seedling icon,
// Low/Limited the tools icon.
func SelectDevelopmentAreas(scores types.DimensionScores) []types.ContentItem {
	candidates := filterBands(scoredDimensions(scores), types.BandDeveloping, types.BandLow)
	sortByScore(candidates, false)
	if len(candidates) > selectionSize {
		candidates = candidates[:selectionSize]
	}

	items := make([]types.ContentItem, 0, selectionSize)
	for _, sd := range candidates {
		icon := types.Icon{Kind: types.IconTools}
		if sd.Band == types.BandDeveloping {
			icon = types.Icon{Kind: types.IconSeedling}
		}
		items = append(items, types.ContentItem{
			Dimension: sd.Dim,
			Icon:      icon,
			Title:     itemTitle(sd.Dim, sd.Score),
			Body:      formatBodyToLines(developmentTexts[sd.Dim][sd.Band]),
		})
	}

	return padPlaceholders(items, noAreasTitle, noAdditionalAreasTitle)
}

// SelectPriorityRecommendations returns exactly three recommendations:
// first the real development-area dimensions in their selected order, then
// remaining scored dimensions ascending by score, then any unused dimension
// in fixed order. Bodies are fixed per dimension.
func SelectPriorityRecommendations(scores types.DimensionScores, developmentAreas []types.ContentItem) []types.ContentItem {
	used := make(map[types.Dimension]bool, selectionSize)
	items := make([]types.ContentItem, 0, selectionSize)

	appendDim := func(dim types.Dimension) {
		if used[dim] || len(items) >= selectionSize {
			return
		}
		body, ok := recommendationTexts[dim]
		if !ok {
			return
		}
		items = append(items, types.ContentItem{
			Dimension: dim,
			Icon:      types.Icon{Kind: types.IconRecommendation, Dim: dim},
			Title:     dim.Label(),
			Body:      splitBodyLines(body),
		})
		used[dim] = true
	}

	for _, da := range developmentAreas {
		if !da.Placeholder() {
			appendDim(da.Dimension)
		}
	}

	remaining := scoredDimensions(scores)
	sortByScore(remaining, false)
	for _, sd := range remaining {
		appendDim(sd.Dim)
	}

	for _, dim := range types.DimensionOrder {
		appendDim(dim)
	}

	// Unreachable while the recommendation bank covers all five dimensions,
	// but the contract is exactly three items no matter what.
	for len(items) < selectionSize {
		items = append(items, types.ContentItem{
			Icon:  types.Icon{Kind: types.IconTools},
			Title: "Development Priority",
			Body:  splitBodyLines("Continue developing communication skills through practice and feedback."),
		})
	}

	return items[:selectionSize]
}
