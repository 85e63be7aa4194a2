package client

import (
	"context"
	"net/http"

	"udoo-web/models"
)

// AdminReports mengambil agregat laporan untuk dashboard admin.
func (c *Client) AdminReports(ctx context.Context, token string) (models.Report, error) {
	var report models.Report
	err := c.call(ctx, token, http.MethodGet, "/admin/reports", nil, &report)
	return report, err
}
