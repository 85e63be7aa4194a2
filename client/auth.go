package client

import (
	"context"
	"net/http"

	"udoo-web/models"
)

type loginData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login menukar kredensial dengan bearer token dari backend.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var data loginData
	if err := c.call(ctx, "", http.MethodPost, "/auth/login", req, &data); err != nil {
		return "", err
	}
	return data.AccessToken, nil
}

// Register mendaftarkan akun baru. Role ditetapkan oleh backend.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.call(ctx, "", http.MethodPost, "/auth/register", req, nil)
}

// Me mengambil identitas pengguna pemilik token. Satu kegagalan dianggap
// final untuk sesi tersebut; pemanggil harus membuang token.
func (c *Client) Me(ctx context.Context, token string) (models.User, error) {
	var user models.User
	err := c.call(ctx, token, http.MethodGet, "/auth/me", nil, &user)
	return user, err
}

// Logout mencabut token di sisi backend.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.call(ctx, token, http.MethodPost, "/auth/logout", nil, nil)
}
