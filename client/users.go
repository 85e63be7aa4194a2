package client

import (
	"context"
	"fmt"
	"net/http"

	"udoo-web/models"
)

// AdminUsers mengambil semua akun untuk halaman kelola pengguna.
func (c *Client) AdminUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	err := c.call(ctx, token, http.MethodGet, "/admin/users", nil, &users)
	return users, err
}

type updateRoleRequest struct {
	Role models.Role `json:"role"`
}

// UpdateUserRole mengganti role sebuah akun.
func (c *Client) UpdateUserRole(ctx context.Context, token string, id int64, role models.Role) error {
	key := fmt.Sprintf("%s|users|role|%d", token, id)
	return c.mutate(key, func() error {
		return c.call(ctx, token, http.MethodPut, fmt.Sprintf("/admin/users/%d/role", id), updateRoleRequest{Role: role}, nil)
	})
}

// DeleteUser menghapus sebuah akun.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	key := fmt.Sprintf("%s|users|delete|%d", token, id)
	return c.mutate(key, func() error {
		return c.call(ctx, token, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil)
	})
}
