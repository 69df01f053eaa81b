package response

import "marketlink/internal/usecase/queries"

type StatsResponse struct {
	TotalProducts int64               `json:"total_products"`
	TotalQuantity int64               `json:"total_quantity"`
	TotalSellers  int64               `json:"total_sellers"`
	TotalBuyers   int64               `json:"total_buyers"`
	TopSellers    []queries.TopSeller `json:"top_sellers"`
}

func FromStatsView(v *queries.StatsView) *StatsResponse {
	return &StatsResponse{
		TotalProducts: v.TotalProducts,
		TotalQuantity: v.TotalQuantity,
		TotalSellers:  v.TotalSellers,
		TotalBuyers:   v.TotalBuyers,
		TopSellers:    v.TopSellers,
	}
}
