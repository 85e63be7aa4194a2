package client

import (
	"context"
	"fmt"
	"net/http"

	"udoo-web/models"
)

// SellerOrders mengambil pesanan yang masuk ke seller yang sedang login.
func (c *Client) SellerOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	err := c.call(ctx, token, http.MethodGet, "/seller/orders", nil, &orders)
	return orders, err
}

// CompleteOrder menandai satu pesanan sebagai selesai.
func (c *Client) CompleteOrder(ctx context.Context, token string, id int64) error {
	key := fmt.Sprintf("%s|orders|complete|%d", token, id)
	return c.mutate(key, func() error {
		return c.call(ctx, token, http.MethodPost, fmt.Sprintf("/seller/orders/%d/complete", id), nil, nil)
	})
}
