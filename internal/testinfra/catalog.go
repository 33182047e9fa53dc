// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package testinfra

// Users and articles of DefaultCatalog.
const (
	KnownUser    int64 = 123456
	NullFeatUser int64 = 555
	UnknownUser  int64 = 999999999

	// Candidate pool order is 3, 1, 5, 2, 4, 3, 6.
	ArticleShirt   int64 = 1 // price 30, sales 50, 10 char ID
	ArticleDress   int64 = 2 // price 70, sales 200, 9 char ID
	ArticleSocks   int64 = 3 // price 10, sales 10, listed twice in the pool
	ArticleScarf   int64 = 4 // price 50, sales 300, NULL external ID
	ArticleBelt    int64 = 5 // no item features
	ArticleUnknown int64 = 6 // no item features, malformed external ID
)

// DefaultCatalog returns the shared fixture catalog.
//
// With PriceBucketTree, KnownUser's candidates rank Dress, Scarf, Shirt,
// Socks. Scarf has no usable external ID, so the translated list is
// 0108775044, 0108775015, 0110065001.
//
// In pool order the cold-start list is 0110065001, 0108775015, 0111111111,
// 108775044 (raw). By popularity it is Dress, Shirt, Socks, Belt.
func DefaultCatalog() Catalog {
	return Catalog{
		Users: []UserFeatures{
			{CustomerID: KnownUser, AvgPrice: F(25.5), PriceStd: F(4.25), TotalPurchases: F(17),
				TenureDays: F(410), DaysSinceLastBuy: F(12)},
			{CustomerID: NullFeatUser, AvgPrice: nil, PriceStd: F(1), TotalPurchases: F(1),
				TenureDays: F(3), DaysSinceLastBuy: F(3)},
		},
		Items: []ItemFeatures{
			{ArticleID: ArticleShirt, AvgPrice: F(30), TotalSales: F(50), ProductGroup: I(1), IndexGroup: I(2), GarmentGroup: I(1002)},
			{ArticleID: ArticleDress, AvgPrice: F(70), TotalSales: F(200), ProductGroup: I(3), IndexGroup: I(1), GarmentGroup: I(1013)},
			{ArticleID: ArticleSocks, AvgPrice: F(10), TotalSales: F(10), ProductGroup: I(4), IndexGroup: I(2), GarmentGroup: I(1021)},
			{ArticleID: ArticleScarf, AvgPrice: F(50), TotalSales: F(300), ProductGroup: I(5), IndexGroup: I(3), GarmentGroup: I(1019)},
		},
		Mappings: []Mapping{
			{ArticleID: ArticleShirt, ExternalID: S("0108775015")},
			{ArticleID: ArticleDress, ExternalID: S("108775044")},
			{ArticleID: ArticleSocks, ExternalID: S("0110065001")},
			{ArticleID: ArticleScarf, ExternalID: nil},
			{ArticleID: ArticleBelt, ExternalID: S("0111111111")},
			{ArticleID: ArticleUnknown, ExternalID: S("A-12")},
			{ArticleID: ArticleShirt, ExternalID: S("0999999999")},
		},
		Candidates: []int64{ArticleSocks, ArticleShirt, ArticleBelt, ArticleDress, ArticleScarf, ArticleSocks, ArticleUnknown},
	}
}
