package erp

import (
	"context"
	"net/http"
)

func (c *Client) DashboardStats(ctx context.Context) (*Envelope[DashboardStats], error) {
	return doEnvelope[DashboardStats](ctx, c, http.MethodGet, epDashboardStats, nil, nil)
}

func (c *Client) MasterDashboard(ctx context.Context) (*Envelope[MasterDashboard], error) {
	return doEnvelope[MasterDashboard](ctx, c, http.MethodGet, epMasterDashboard, nil, nil)
}
