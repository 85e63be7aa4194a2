package client

import (
	"context"
	"fmt"
	"net/http"

	"udoo-web/models"
)

// Cart mengambil isi keranjang viewer yang sedang login.
func (c *Client) Cart(ctx context.Context, token string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := c.call(ctx, token, http.MethodGet, "/cart", nil, &items)
	return items, err
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// AddToCart menambahkan produk ke keranjang. Penambahan produk yang sama
// dilebur jumlahnya oleh backend.
func (c *Client) AddToCart(ctx context.Context, token string, productID int64, quantity int) error {
	key := fmt.Sprintf("%s|cart|add|%d", token, productID)
	return c.mutate(key, func() error {
		return c.call(ctx, token, http.MethodPost, "/cart", addToCartRequest{ProductID: productID, Quantity: quantity}, nil)
	})
}

// RemoveCartItem menghapus satu baris keranjang.
func (c *Client) RemoveCartItem(ctx context.Context, token string, id int64) error {
	key := fmt.Sprintf("%s|cart|remove|%d", token, id)
	return c.mutate(key, func() error {
		return c.call(ctx, token, http.MethodDelete, fmt.Sprintf("/cart/%d", id), nil, nil)
	})
}

// ClearCart mengosongkan keranjang setelah checkout berhasil.
func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.mutate(token+"|cart|clear", func() error {
		return c.call(ctx, token, http.MethodPost, "/cart/clear", nil, nil)
	})
}

// Checkout mengirim pesanan yang dibentuk dari isi keranjang.
func (c *Client) Checkout(ctx context.Context, token string, req models.CheckoutRequest) error {
	return c.mutate(token+"|checkout", func() error {
		return c.call(ctx, token, http.MethodPost, "/checkout", req, nil)
	})
}
