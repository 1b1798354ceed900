package models

import (
	"github.com/domalens/domalens/schema"
)

const (
	ModelRarity  = "rarity"
	ModelPrice   = "price"
	ModelOutlier = "outlier"
	ModelTrends  = "trends"
	ModelNetwork = "network"
)

const baseURL = "https://godswilldave1--domalens-backend-api-domalensapi"

func DefaultEndpoints() schema.Models {
	return schema.Models{
		Rarity:  baseURL + "-rarity.modal.run",
		Price:   baseURL + "-price.modal.run",
		Outlier: baseURL + "-outlier.modal.run",
		Trends:  baseURL + "-trends.modal.run",
		Network: baseURL + "-network.modal.run",
	}
}

// DefaultDemos are the hosted model playgrounds the dashboard embeds, one per tab.
func DefaultDemos() []schema.ModelDemo {
	return []schema.ModelDemo{
		{ID: "rarity", Name: "Rarity Scorer", URL: "https://gidave-doma-domain-rarity-scorer.hf.space?__theme=light"},
		{ID: "price", Name: "Price Predictor", URL: "https://gidave-doma-price-predictor.hf.space?__theme=light"},
		{ID: "trend", Name: "Trend Analyzer", URL: "https://gidave-doma-trend-analyzer.hf.space?__theme=light"},
		{ID: "outlier", Name: "Outlier Detector", URL: "https://gidave-doma-outlier-detector.hf.space?__theme=light"},
		{ID: "network", Name: "Network Analyzer", URL: "https://gidave-doma-network-analyzer.hf.space?__theme=light"},
	}
}
