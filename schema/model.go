package schema

// ModelScores aggregates the inference endpoints. A nil field means the model
// was unreachable or did not answer for this domain.
type ModelScores struct {
	Rarity           *int    `json:"rarity"`
	PredictedPrice   *string `json:"predictedPrice"`
	IsOutlier        *bool   `json:"isOutlier"`
	TrendScore       *int    `json:"trendScore"`       // hype index of the domain's TLD
	NetworkInfluence *int    `json:"networkInfluence"` // centrality score of the domain
}

type ModelDemo struct {
	ID   string `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`
	URL  string `json:"url" mapstructure:"url"`
}
