package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mersoabreu/fincontrol/internal/domain/entity"
)

// GetSummary busca o agregado mensal. Mês e ano zerados são omitidos e a API
// responde com o mês corrente. O resumo nunca é cacheado entre navegações.
func (c *Client) GetSummary(ctx context.Context, month, year int) (*entity.DashboardSummary, error) {
	query := url.Values{}
	if month > 0 {
		query.Set("month", strconv.Itoa(month))
	}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}

	var summary entity.DashboardSummary
	if err := c.get(ctx, "/dashboard/summary", query, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
