package queries

import "context"

// TopSeller ranks sellers by total catalog quantity, the tie-break the
// owner dashboard uses.
type TopSeller struct {
	Username      string `json:"username"`
	TotalQuantity int64  `json:"total_quantity"`
}

type StatsView struct {
	TotalProducts int64       `json:"total_products"`
	TotalQuantity int64       `json:"total_quantity"`
	TotalSellers  int64       `json:"total_sellers"`
	TotalBuyers   int64       `json:"total_buyers"`
	TopSellers    []TopSeller `json:"top_sellers"`
}

type StatsQueries interface {
	Overview(ctx context.Context) (*StatsView, error)
}

type StatsReadStore interface {
	Overview(ctx context.Context) (*StatsView, error)
}

type statsQueriesImpl struct {
	readStore StatsReadStore
}

func NewStatsQueries(readStore StatsReadStore) StatsQueries {
	return &statsQueriesImpl{readStore: readStore}
}

func (q *statsQueriesImpl) Overview(ctx context.Context) (*StatsView, error) {
	return q.readStore.Overview(ctx)
}
