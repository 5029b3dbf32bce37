package types

// Dimension is one of the five measured behavioral traits.
type Dimension string

// The five instrument dimensions.
const (
	DimDirectness   Dimension = "DT" // Directness & Transparency
	DimTaskRelation Dimension = "TR" // Task vs Relational Accountability
	DimConflict     Dimension = "CO" // Conflict Orientation
	DimAdaptability Dimension = "CA" // Cultural Adaptability
	DimEmpathy      Dimension = "EP" // Empathy & Perspective-Taking
)

// DimensionOrder is the fixed display order used for tie-breaking and for
// every per-dimension output block.
var DimensionOrder = []Dimension{
	DimDirectness,
	DimTaskRelation,
	DimConflict,
	DimAdaptability,
	DimEmpathy,
}

// DimensionLabels maps dimension codes to their full display names.
var DimensionLabels = map[Dimension]string{
	DimDirectness:   "Directness & Transparency",
	DimTaskRelation: "Task vs Relational Accountability",
	DimConflict:     "Conflict Orientation",
	DimAdaptability: "Cultural Adaptability",
	DimEmpathy:      "Empathy & Perspective-Taking",
}

// OrderIndex returns the position of dim in DimensionOrder, or
// len(DimensionOrder) for unknown codes so they sort last.
func (d Dimension) OrderIndex() int {
	for i, dim := range DimensionOrder {
		if dim == d {
			return i
		}
	}
	return len(DimensionOrder)
}

// Label returns the full display name for the dimension.
func (d Dimension) Label() string {
	return DimensionLabels[d]
}

// DimensionScores maps each dimension to its score, or nil when every
// constituent item was absent. A missing dimension stays missing; it is
// never reported as zero.
type DimensionScores map[Dimension]*float64

// Get returns the score for dim and whether it is present.
func (s DimensionScores) Get(dim Dimension) (float64, bool) {
	v, ok := s[dim]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// AnyPresent reports whether at least one dimension has a score.
func (s DimensionScores) AnyPresent() bool {
	for _, v := range s {
		if v != nil {
			return true
		}
	}
	return false
}

// Band is the qualitative label derived from a 0-5 display score.
type Band string

// Band labels, ordered from lowest to highest score range.
const (
	BandLow        Band = "Low / Limited"
	BandDeveloping Band = "Developing"
	BandModerate   Band = "Moderate / Balanced"
	BandHigh       Band = "High"
	BandVeryHigh   Band = "Very High"
)

// IconKind distinguishes the closed set of icon variants a content item can
// carry. The report writer maps each variant to a concrete asset; the core
// never deals in image data.
type IconKind int

// Icon variants.
const (
	IconNone           IconKind = iota
	IconShield                  // real key strength
	IconSeedling                // development area in the Developing band
	IconTools                   // Low/Limited development area or placeholder
	IconRecommendation          // per-dimension recommendation icon
)

// Icon tags a content item with its rendering variant. Dim is set only for
// IconRecommendation.
type Icon struct {
	Kind IconKind  `json:"kind"`
	Dim  Dimension `json:"dim,omitempty"`
}

// ContentItem is one selected strength, development area, or recommendation.
// Dimension is empty for placeholder items. Body always holds exactly three
// lines; trailing lines may be empty.
type ContentItem struct {
	Dimension Dimension `json:"dimension,omitempty"`
	Icon      Icon      `json:"icon"`
	Title     string    `json:"title"`
	Body      []string  `json:"body"`
}

// Placeholder reports whether the item is padding rather than a real
// selection.
func (c ContentItem) Placeholder() bool {
	return c.Dimension == ""
}

// ParticipantRecord is the complete per-row output handed to the report
// writer. The core produces it and holds no reference afterward.
type ParticipantRecord struct {
	Row   int    `json:"row"`
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email"`
	Date  string `json:"date"`

	Scores     DimensionScores      `json:"scores"`
	ScoreCells map[Dimension]string `json:"score_cells"`

	KeyStrengths     []ContentItem `json:"key_strengths" validate:"len=3"`
	DevelopmentAreas []ContentItem `json:"development_areas" validate:"len=3"`
	Recommendations  []ContentItem `json:"recommendations" validate:"len=3"`

	Summary string `json:"summary" validate:"required"`
}
