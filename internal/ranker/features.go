// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package ranker

// NumFeatures is the length of every ranking vector.
const NumFeatures = 14

// Positions in the ranking vector. The model's learned weights are bound to
// these positions, so they must never be reordered.
const (
	IdxSource = iota
	IdxALSScore
	IdxVisualScore
	IdxUserAvgPrice
	IdxUserPriceStd
	IdxUserTotalPurchases
	IdxUserTenureDays
	IdxDaysSinceLastBuy
	IdxItemAvgPrice
	IdxItemTotalSales
	IdxProductGroup
	IdxIndexGroup
	IdxGarmentGroup
	IdxPriceDiff
)

// FeatureOrder names each vector position, as written in the model header.
var FeatureOrder = [NumFeatures]string{
	IdxSource:             "source",
	IdxALSScore:           "als_score",
	IdxVisualScore:        "visual_score",
	IdxUserAvgPrice:       "user_avg_price",
	IdxUserPriceStd:       "user_price_std",
	IdxUserTotalPurchases: "user_total_purchases",
	IdxUserTenureDays:     "user_tenure_days",
	IdxDaysSinceLastBuy:   "days_since_last_buy",
	IdxItemAvgPrice:       "item_avg_price",
	IdxItemTotalSales:     "item_total_sales",
	IdxProductGroup:       "product_group",
	IdxIndexGroup:         "index_group",
	IdxGarmentGroup:       "garment_group",
	IdxPriceDiff:          "price_diff",
}

// FeatureNames returns a copy of FeatureOrder as a slice.
func FeatureNames() []string {
	names := make([]string, NumFeatures)
	copy(names, FeatureOrder[:])
	return names
}
