package projection

// AnchorPair holds the two conceptual pole sentences of one dimension.
// Input text is compared against both poles to locate it on the axis.
type AnchorPair struct {
	Dimension string `json:"dimension"`
	High      string `json:"high"`
	Low       string `json:"low"`
}

// DefaultAnchors returns the pole sentences for all five dimensions,
// in canonical key order
func DefaultAnchors() []AnchorPair {
	return []AnchorPair{
		{
			Dimension: "v",
			High:      "I am rushing, moving fast, frantic, panicked, urgent.",
			Low:       "I am stuck, frozen, slow, sluggish, paralyzed.",
		},
		{
			Dimension: "R",
			High:      "I feel resistance, friction, pain, trauma, blocked, hated.",
			Low:       "I feel easy, smooth, accepting, allowing, open.",
		},
		{
			Dimension: "r",
			High:      "I feel connected, loved, understood, resonant, in tune.",
			Low:       "I feel lonely, isolated, misunderstood, disconnected.",
		},
		{
			Dimension: "C",
			High:      "I feel rested, resourced, spacious, capable, energized.",
			Low:       "I feel drained, depleted, exhausted, empty, spent.",
		},
		{
			Dimension: "S",
			High:      "I am confused, chaotic, messy, foggy, overwhelmed.",
			Low:       "I am clear, organized, structured, clean, ordered.",
		},
	}
}
