package client

import (
	"context"
	"fmt"
	"net/http"

	"udoo-web/models"
)

// managedPrefix memilih prefix endpoint produk dari role yang sudah
// teresolusi. Role diteruskan sebagai parameter; tidak ada panggilan
// /auth/me tambahan per mutasi.
func managedPrefix(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "/admin/products"
	case models.RoleSeller:
		return "/seller/products"
	default:
		return "/products"
	}
}

// Products mengambil katalog publik untuk etalase.
func (c *Client) Products(ctx context.Context, token string) ([]models.Product, error) {
	var products []models.Product
	err := c.call(ctx, token, http.MethodGet, "/products", nil, &products)
	return products, err
}

// Product mengambil satu produk dari katalog publik.
func (c *Client) Product(ctx context.Context, token string, id int64) (models.Product, error) {
	var product models.Product
	err := c.call(ctx, token, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product)
	return product, err
}

// ManagedProducts mengambil daftar produk milik halaman kelola
// (admin melihat semuanya, seller hanya miliknya).
func (c *Client) ManagedProducts(ctx context.Context, token string, role models.Role) ([]models.Product, error) {
	var products []models.Product
	err := c.call(ctx, token, http.MethodGet, managedPrefix(role), nil, &products)
	return products, err
}

// ManagedProduct mengambil satu produk untuk form edit.
func (c *Client) ManagedProduct(ctx context.Context, token string, role models.Role, id int64) (models.Product, error) {
	var product models.Product
	err := c.call(ctx, token, http.MethodGet, fmt.Sprintf("%s/%d", managedPrefix(role), id), nil, &product)
	return product, err
}

// CreateProduct membuat produk baru lewat prefix role yang sesuai.
func (c *Client) CreateProduct(ctx context.Context, token string, role models.Role, payload models.ProductPayload) error {
	key := token + "|products|create|" + payload.Name
	return c.mutate(key, func() error {
		return c.call(ctx, token, http.MethodPost, managedPrefix(role), payload, nil)
	})
}

// UpdateProduct memperbarui produk yang sudah ada.
func (c *Client) UpdateProduct(ctx context.Context, token string, role models.Role, id int64, payload models.ProductPayload) error {
	key := fmt.Sprintf("%s|products|update|%d", token, id)
	return c.mutate(key, func() error {
		return c.call(ctx, token, http.MethodPut, fmt.Sprintf("%s/%d", managedPrefix(role), id), payload, nil)
	})
}

// DeleteProduct menghapus produk.
func (c *Client) DeleteProduct(ctx context.Context, token string, role models.Role, id int64) error {
	key := fmt.Sprintf("%s|products|delete|%d", token, id)
	return c.mutate(key, func() error {
		return c.call(ctx, token, http.MethodDelete, fmt.Sprintf("%s/%d", managedPrefix(role), id), nil, nil)
	})
}
