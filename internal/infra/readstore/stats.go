package readstore

import (
	"context"

	"marketlink/internal/infra"
	"marketlink/internal/infra/db"
	"marketlink/internal/usecase/queries"
)

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(dbtx db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: dbtx}
}

// Overview aggregates the owner dashboard in one round trip per concern.
// Top sellers rank by summed catalog quantity, limit 3.
func (r *StatsReadStore) Overview(ctx context.Context) (*queries.StatsView, error) {
	const totalsQuery = `
		SELECT
			(SELECT count(*) FROM products),
			(SELECT coalesce(sum(quantity), 0) FROM products),
			(SELECT count(*) FROM users WHERE role = 'seller'),
			(SELECT count(*) FROM users WHERE role = 'buyer')`

	var view queries.StatsView
	err := r.db.QueryRow(ctx, totalsQuery).Scan(
		&view.TotalProducts, &view.TotalQuantity, &view.TotalSellers, &view.TotalBuyers,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to aggregate stats totals", err)
	}

	const topSellersQuery = `
		SELECT u.username, sum(p.quantity)::bigint AS total_quantity
		FROM products p
		JOIN users u ON u.id = p.owner_id
		GROUP BY u.username
		ORDER BY total_quantity DESC
		LIMIT 3`

	rows, err := r.db.Query(ctx, topSellersQuery)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to aggregate top sellers", err)
	}
	defer rows.Close()

	view.TopSellers = make([]queries.TopSeller, 0, 3)
	for rows.Next() {
		var ts queries.TopSeller
		if err := rows.Scan(&ts.Username, &ts.TotalQuantity); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan top seller row", err)
		}
		view.TopSellers = append(view.TopSellers, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate top seller rows", err)
	}

	return &view, nil
}
